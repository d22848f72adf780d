package model

import "time"

type PostModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author UserModel `gorm:"foreignKey:AuthorID"`
}

func (PostModel) TableName() string {
	return "posts"
}
