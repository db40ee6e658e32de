// Package entity defines the core domain entities of the blog: categories,
// authors and the articles that reference them, plus the identifier type and
// domain-specific errors shared by every layer.
package entity

// Article represents a blog post. It belongs to exactly one category and one
// author, referenced by id.
type Article struct {
	ID         ID       `json:"-"`
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	CategoryID ID       `json:"category_id"`
	AuthorID   ID       `json:"author_id"`
	Tags       []string `json:"tags"`
}

// NormalizeTags replaces a nil tag list with an empty one so the article
// always encodes tags as a JSON array. Order and duplicates are preserved.
func (a *Article) NormalizeTags() {
	if a.Tags == nil {
		a.Tags = []string{}
	}
}
