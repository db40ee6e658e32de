package entity

import (
	"fmt"
	"regexp"
)

// maxIDLength bounds identifiers accepted from clients.
const maxIDLength = 64

// idPattern covers uuid strings, hex keys and SurrealDB generated record ids.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID checks that s is a well-formed identifier.
// Returns a ValidationError naming field if it is empty, too long or contains
// characters outside [A-Za-z0-9_-].
func ValidateID(field, s string) error {
	if s == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}

	if len(s) > maxIDLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("is too long (max %d characters)", maxIDLength),
		}
	}

	if !idPattern.MatchString(s) {
		return &ValidationError{Field: field, Message: "is not a valid identifier"}
	}

	return nil
}
