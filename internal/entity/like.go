package entity

import "time"

// Like records that a user currently likes a post. Existence is the fact:
// there is at most one row per (user, post) and rows are never updated.
type Like struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResult is the outcome of a toggle.
type LikeResult struct {
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	TotalLikes int64  `json:"total_likes"`
}
