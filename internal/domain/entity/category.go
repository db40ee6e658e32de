package entity

// Category groups articles by topic.
type Category struct {
	ID   ID     `json:"-"`
	Name string `json:"name"`
}
