package persistent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("failed to open dry-run session: %v", err)
	}
	return db
}

// Joining likes and comments in the same query makes each post's rows a
// like x comment cross product, so plain COUNT would report
// like_rows*comment_rows in both columns. Only DISTINCT ids keep the two
// counts independent.
func TestDetailQuery_CountsDistinctIDs(t *testing.T) {
	r := &postRepository{db: dryRunDB(t)}

	var row postDetailRow
	result := r.detailQuery().Where("posts.id = ?", 1).Find(&row)

	assert.NoError(t, result.Error)
	sql := result.Statement.SQL.String()
	assert.Contains(t, sql, "COUNT(DISTINCT likes.id) AS like_count")
	assert.Contains(t, sql, "COUNT(DISTINCT comments.id) AS comment_count")
	assert.NotContains(t, sql, "COUNT(likes.id)")
	assert.NotContains(t, sql, "COUNT(comments.id)")
}

func TestDetailQuery_JoinsAndGroupsPerPost(t *testing.T) {
	r := &postRepository{db: dryRunDB(t)}

	var row postDetailRow
	result := r.detailQuery().Where("posts.id = ?", 1).Find(&row)

	assert.NoError(t, result.Error)
	sql := result.Statement.SQL.String()
	assert.Contains(t, sql, "JOIN users ON users.id = posts.author_id")
	assert.Contains(t, sql, "LEFT JOIN likes ON likes.post_id = posts.id")
	assert.Contains(t, sql, "LEFT JOIN comments ON comments.post_id = posts.id")
	assert.Contains(t, sql, "GROUP BY posts.id, users.username")
}
