package persistent

import (
	"errors"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id uint) (*entity.Post, error)
	GetDetail(id uint) (*entity.PostDetail, error)
	ListDetails(offset, limit int) ([]*entity.PostDetail, error)
	Update(post *entity.Post) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// postDetailRow is the scan target for the grouped aggregate query.
type postDetailRow struct {
	ID             uint
	Title          string
	Content        string
	AuthorID       uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AuthorUsername string
	LikeCount      int64
	CommentCount   int64
}

func (row *postDetailRow) toEntity() *entity.PostDetail {
	return &entity.PostDetail{
		Post: entity.Post{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			AuthorID:  row.AuthorID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		AuthorUsername: row.AuthorUsername,
		LikeCount:      row.LikeCount,
		CommentCount:   row.CommentCount,
	}
}

// detailQuery joins a post with its author and both engagement tables in one
// grouped query. Likes and comments form a cross product per post, so the
// counts must be DISTINCT; plain COUNT(*) would report like_rows*comment_rows.
func (r *postRepository) detailQuery() *gorm.DB {
	return r.db.Model(&model.PostModel{}).
		Select(`posts.id, posts.title, posts.content, posts.author_id, posts.created_at, posts.updated_at,
			users.username AS author_username,
			COUNT(DISTINCT likes.id) AS like_count,
			COUNT(DISTINCT comments.id) AS comment_count`).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id, users.username")
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id uint) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetDetail(id uint) (*entity.PostDetail, error) {
	var row postDetailRow
	result := r.detailQuery().Where("posts.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return row.toEntity(), nil
}

// ListDetails returns posts ordered by id ascending. The source schema has no
// inherent order, so insertion order is the documented contract.
func (r *postRepository) ListDetails(offset, limit int) ([]*entity.PostDetail, error) {
	var rows []postDetailRow
	query := r.detailQuery().Order("posts.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]*entity.PostDetail, len(rows))
	for i := range rows {
		details[i] = rows[i].toEntity()
	}
	return details, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Save(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

// Delete removes the post together with its likes and comments in one
// transaction, so no orphaned engagement rows survive a partial failure.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "id = ?", id).Error
	})
}

func (r *postRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
