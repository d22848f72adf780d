package model

import "time"

// LikeModel rows are unique per (user_id, post_id). The composite unique
// index is the authoritative guard against concurrent double-likes.
type LikeModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID"`
	Post PostModel `gorm:"foreignKey:PostID"`
}

func (LikeModel) TableName() string {
	return "likes"
}
