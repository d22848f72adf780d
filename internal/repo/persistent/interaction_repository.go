package persistent

import (
	"errors"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	GetLike(userID, postID uint) (*entity.Like, error)
	CreateLike(userID, postID uint) error
	DeleteLike(userID, postID uint) error
	CountLikes(postID uint) (int64, error)
	CreateComment(comment *entity.Comment) error
	ListComments(postID uint) ([]*entity.Comment, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetLike(userID, postID uint) (*entity.Like, error) {
	var likeModel model.LikeModel
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&likeModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToLikeEntity(&likeModel), nil
}

// CreateLike inserts the like row. A concurrent toggle that lost the race
// hits the (user_id, post_id) unique index; that is reported as
// entity.ErrAlreadyLiked rather than a generic failure.
func (r *interactionRepository) CreateLike(userID, postID uint) error {
	likeModel := &model.LikeModel{
		UserID: userID,
		PostID: postID,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (r *interactionRepository) DeleteLike(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{}).Error
}

func (r *interactionRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *interactionRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

// commentRow carries a comment joined with its author's username.
type commentRow struct {
	ID        uint
	Content   string
	UserID    uint
	PostID    uint
	CreatedAt time.Time
	Username  string
}

// ListComments returns comments newest-first. The ordering is part of the
// API contract, with id as tiebreaker for same-timestamp rows.
func (r *interactionRepository) ListComments(postID uint) ([]*entity.Comment, error) {
	var rows []commentRow
	err := r.db.Model(&model.CommentModel{}).
		Select("comments.id, comments.content, comments.user_id, comments.post_id, comments.created_at, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i, row := range rows {
		comments[i] = &entity.Comment{
			ID:        row.ID,
			Content:   row.Content,
			UserID:    row.UserID,
			PostID:    row.PostID,
			CreatedAt: row.CreatedAt,
			Username:  row.Username,
		}
	}
	return comments, nil
}
