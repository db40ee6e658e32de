package http

import (
	"net/http"
	"strings"
)

type directive struct {
	name    string
	sources []string
}

// cspPolicy renders Content-Security-Policy directives in declaration order.
type cspPolicy []directive

func (p cspPolicy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		if len(d.sources) == 0 {
			continue
		}
		parts = append(parts, d.name+" "+strings.Join(d.sources, " "))
	}
	return strings.Join(parts, "; ")
}

// apiPolicy is applied to JSON endpoints, which never load sub-resources.
var apiPolicy = cspPolicy{
	{"default-src", []string{"'none'"}},
	{"connect-src", []string{"'self'"}},
	{"frame-ancestors", []string{"'none'"}},
	{"base-uri", []string{"'self'"}},
	{"form-action", []string{"'self'"}},
}

// swaggerPolicy lets the bundled Swagger UI run its inline bootstrap script.
var swaggerPolicy = cspPolicy{
	{"default-src", []string{"'self'"}},
	{"script-src", []string{"'self'", "'unsafe-inline'"}},
	{"style-src", []string{"'self'", "'unsafe-inline'"}},
	{"img-src", []string{"'self'", "data:"}},
	{"font-src", []string{"'self'", "data:"}},
	{"connect-src", []string{"'self'"}},
	{"frame-ancestors", []string{"'none'"}},
	{"base-uri", []string{"'self'"}},
	{"form-action", []string{"'self'"}},
	{"object-src", []string{"'none'"}},
}

var (
	apiCSP     = apiPolicy.String()
	swaggerCSP = swaggerPolicy.String()
)

// SecurityHeaders sets Content-Security-Policy and the usual hardening
// headers. Paths under /swagger get a policy that allows the UI to render.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if r.URL.Path == "/swagger" || strings.HasPrefix(r.URL.Path, "/swagger/") {
			h.Set("Content-Security-Policy", swaggerCSP)
		} else {
			h.Set("Content-Security-Policy", apiCSP)
		}
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
