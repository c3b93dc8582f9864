package models

// Article is the full-text view of a single story, extracted on demand
// when a reader opens an item.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
