package models

import "time"

// BlogPost is the generated article itself.
type BlogPost struct {
	Title   string `json:"title"`
	Content string `json:"content"` // Markdown
}

// BlogPostMeta is the persisted record for a generated post. Only metadata
// is stored; the full content lives with whoever published it.
type BlogPostMeta struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"userId"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
