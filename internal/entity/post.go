package entity

import "time"

type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostDetail is a post joined with its author and engagement counts.
// Counts are computed at read time with DISTINCT aggregation; they are
// never stored denormalized.
type PostDetail struct {
	Post
	AuthorUsername string `json:"author_username,omitempty"`
	LikeCount      int64  `json:"like_count"`
	CommentCount   int64  `json:"comment_count"`
}
