package model

import "time"

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	PostID    uint   `gorm:"not null;index"`
	CreatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID"`
	Post PostModel `gorm:"foreignKey:PostID"`
}

func (CommentModel) TableName() string {
	return "comments"
}
