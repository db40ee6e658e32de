package pathutil_test

import (
	"fmt"

	"mini-blog/internal/handler/http/pathutil"
)

// ExampleNormalizePath demonstrates how path normalization works
// to prevent metrics label cardinality explosion.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/articles/7f3c"))
	fmt.Println(pathutil.NormalizePath("/articles/b3kx9q2mlw0r/"))
	fmt.Println(pathutil.NormalizePath("/categories/go"))
	fmt.Println(pathutil.NormalizePath("/health"))

	// Output:
	// /articles/{id}
	// /articles/{id}
	// /categories/{id}
	// /health
}

func ExampleExtractID() {
	id, err := pathutil.ExtractID("/articles/7f3c/", "/articles/")
	fmt.Println(id, err)

	_, err = pathutil.ExtractID("/articles/a:b", "/articles/")
	fmt.Println(err)

	// Output:
	// 7f3c <nil>
	// validation error on field 'id': is not a valid identifier
}
