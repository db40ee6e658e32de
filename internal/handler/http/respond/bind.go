package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/go-chi/render"

	"mini-blog/internal/domain/entity"
)

// Bind decodes the request body into v and runs its Bind hook. Decode
// failures become ValidationErrors: a type mismatch names the offending
// field, anything unparsable is reported against the body.
func Bind(r *http.Request, v render.Binder) error {
	err := render.Bind(r, v)
	if err == nil {
		return nil
	}

	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		tooBig    *http.MaxBytesError
		vErr      *entity.ValidationError
	)
	switch {
	case errors.As(err, &tooBig), errors.As(err, &vErr):
		return err
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &entity.ValidationError{Field: field, Message: "must be of type " + jsonKind(typeErr)}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &entity.ValidationError{Field: "body", Message: "is not valid JSON"}
	case errors.Is(err, io.EOF):
		return &entity.ValidationError{Field: "body", Message: "is required"}
	default:
		return &entity.ValidationError{Field: "body", Message: err.Error()}
	}
}

// jsonKind names the JSON type the target Go type expects.
func jsonKind(e *json.UnmarshalTypeError) string {
	if e.Type == nil {
		return "object"
	}
	switch e.Type.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "object"
	}
}
