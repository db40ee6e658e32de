package entity

// Author is the writer an article is attributed to.
type Author struct {
	ID   ID     `json:"-"`
	Name string `json:"name"`
}
