package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "article ID", path: "/articles/7f3c", expected: "/articles/{id}"},
		{name: "article uuid", path: "/articles/1b4e28ba-2fa1-11d2-883f-0016a3c5a8c0", expected: "/articles/{id}"},
		{name: "article trailing slash", path: "/articles/7f3c/", expected: "/articles/{id}"},
		{name: "article with query params", path: "/articles/7f3c?page=1", expected: "/articles/{id}"},
		{name: "category ID", path: "/categories/go", expected: "/categories/{id}"},
		{name: "author ID", path: "/authors/ann_1", expected: "/authors/{id}"},

		{name: "collection root", path: "/articles/", expected: "/articles"},
		{name: "health", path: "/health", expected: "/health"},
		{name: "metrics", path: "/metrics", expected: "/metrics"},
		{name: "root", path: "/", expected: "/"},
		{name: "nested unknown", path: "/articles/7f3c/comments", expected: "/articles/7f3c/comments"},
		{name: "unknown", path: "/unknown/path/123", expected: "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
