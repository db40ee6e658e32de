package pathutil

import (
	"strings"

	"mini-blog/internal/domain/entity"
)

// ExtractID extracts and validates a document ID from a URL path.
// It removes the specified prefix and a single trailing slash, then parses the
// remainder with entity.ParseID.
//
// Parameters:
//   - path: The full URL path (e.g., "/articles/7f3c")
//   - prefix: The prefix to remove (e.g., "/articles/")
//
// Returns:
//   - entity.ID: The parsed ID
//   - error: a *entity.ValidationError on the "id" field when the remainder
//     is empty, too long or contains characters outside [A-Za-z0-9_-]
//
// Example:
//
//	id, err := ExtractID("/articles/7f3c/", "/articles/")
//	// Returns: "7f3c", nil
func ExtractID(path, prefix string) (entity.ID, error) {
	idStr := strings.TrimPrefix(path, prefix)
	idStr = strings.TrimSuffix(idStr, "/")
	return entity.ParseID(idStr)
}
