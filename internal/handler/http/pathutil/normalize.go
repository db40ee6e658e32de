package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// The ID segment matches the character set accepted by entity.ParseID.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[A-Za-z0-9_-]+$`), Template: "/articles/{id}"},
	{Pattern: regexp.MustCompile(`^/categories/[A-Za-z0-9_-]+$`), Template: "/categories/{id}"},
	{Pattern: regexp.MustCompile(`^/authors/[A-Za-z0-9_-]+$`), Template: "/authors/{id}"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/7f3c) to the router's template
// format (e.g., /articles/{id}). It is the fallback for requests that never
// reached a chi route, so the labels match those taken from chi.RouteContext.
//
// Examples:
//
//	NormalizePath("/articles/7f3c")         // "/articles/{id}"
//	NormalizePath("/categories/go")         // "/categories/{id}"
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/unknown/path/123")      // "/unknown/path/123" (no match, return original)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/7f3c?x=1")     // "/articles/{id}"
//	NormalizePath("/articles/7f3c/")        // "/articles/{id}"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
