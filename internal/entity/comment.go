package entity

import "time"

// Comment is append-only: no update or delete exists for it.
// Username is denormalized into responses at query time, not stored.
type Comment struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
