package main

import (
	"fmt"

	"inkwell/internal/model"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase fills the schema with test users, posts and cross-engagement.
// Safe to re-run: existing rows are detected and skipped.
func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice", "password123"},
		{"bob@test.com", "bob", "password123"},
		{"charlie@test.com", "charlie", "password123"},
		{"diana@test.com", "diana", "password123"},
		{"eve@test.com", "eve", "password123"},
	}

	userIDs := make([]uint, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
		}

		var existingUser model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		postsCount := 2 + (len(userIDs) % 2)
		log.Info("Creating %d posts for user %s", postsCount, user.Username)
		for i := 0; i < postsCount; i++ {
			post := &model.PostModel{
				Title:    fmt.Sprintf("Post #%d by %s", i+1, user.Username),
				Content:  fmt.Sprintf("Seed content for post #%d from %s.", i+1, user.Username),
				AuthorID: user.ID,
			}
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to create post %d for user %s: %v", i+1, user.Username, err)
			}
		}
	}

	var posts []model.PostModel
	if err := db.Find(&posts).Error; err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	for _, post := range posts {
		for _, userID := range userIDs {
			if userID == post.AuthorID {
				continue
			}

			if (userID+post.ID)%2 == 0 {
				var existingLike model.LikeModel
				result := db.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&existingLike)
				if result.Error != nil {
					like := &model.LikeModel{UserID: userID, PostID: post.ID}
					if err := db.Create(like).Error; err != nil {
						log.Error("Failed to create like: %v", err)
					}
				}
			}

			if (userID+post.ID)%3 == 0 {
				var existingComment model.CommentModel
				result := db.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&existingComment)
				if result.Error != nil {
					comment := &model.CommentModel{
						Content: fmt.Sprintf("Seed comment on %q", post.Title),
						UserID:  userID,
						PostID:  post.ID,
					}
					if err := db.Create(comment).Error; err != nil {
						log.Error("Failed to create comment: %v", err)
					}
				}
			}
		}
	}

	log.Info("Created test likes and comments")
	return nil
}
