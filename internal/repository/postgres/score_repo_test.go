package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
)

func TestScoreRepo_Leaderboard_Order(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepo(db)
	u1 := createUser(t, db, "u1")
	u2 := createUser(t, db, "u2")
	u3 := createUser(t, db, "u3")

	t1, t2, t3 := baseTime, baseTime.Add(time.Minute), baseTime.Add(2*time.Minute)
	// вставляем не в порядке ожидаемой выдачи
	require.NoError(t, repo.Create(context.Background(), &entity.Score{UserID: u3.ID, CategoryID: "math", Score: 95, TotalQuestions: 100, CreatedAt: t3}))
	require.NoError(t, repo.Create(context.Background(), &entity.Score{UserID: u1.ID, CategoryID: "math", Score: 80, TotalQuestions: 100, CreatedAt: t1}))
	require.NoError(t, repo.Create(context.Background(), &entity.Score{UserID: u2.ID, CategoryID: "math", Score: 95, TotalQuestions: 100, CreatedAt: t2}))

	scores, err := repo.Leaderboard(context.Background(), repository.ScoreFilter{CategoryID: strPtr("math")}, 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, "u2", scores[0].User.Username)
	assert.Equal(t, "u3", scores[1].User.Username)
	assert.Equal(t, "u1", scores[2].User.Username)

	top, err := repo.Leaderboard(context.Background(), repository.ScoreFilter{CategoryID: strPtr("math")}, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 95, top[0].Score)
	assert.Equal(t, u2.ID, top[0].UserID)
}

func TestScoreRepo_Leaderboard_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepo(db)
	ctx := context.Background()
	u := createUser(t, db, "u")

	require.NoError(t, repo.Create(ctx, &entity.Score{UserID: u.ID, CategoryID: "math", SubcategoryID: strPtr("algebra"), Score: 1, TotalQuestions: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Score{UserID: u.ID, CategoryID: "math", Score: 2, TotalQuestions: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Score{UserID: u.ID, CategoryID: "geo", Score: 3, TotalQuestions: 5}))

	all, err := repo.Leaderboard(ctx, repository.ScoreFilter{}, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	algebra, err := repo.Leaderboard(ctx, repository.ScoreFilter{CategoryID: strPtr("math"), SubcategoryID: strPtr("algebra")}, 10)
	require.NoError(t, err)
	require.Len(t, algebra, 1)
	assert.Equal(t, 1, algebra[0].Score)
}

func TestScoreRepo_ListRecentByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepo(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Score{
			UserID: alice.ID, CategoryID: "math", Score: i, TotalQuestions: 30,
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Score{UserID: bob.ID, CategoryID: "math", Score: 99, TotalQuestions: 100}))

	recent, err := repo.ListRecentByUser(ctx, alice.ID, 20)
	require.NoError(t, err)
	require.Len(t, recent, 20)
	assert.Equal(t, 24, recent[0].Score, "новые результаты первыми")
	assert.Equal(t, 5, recent[19].Score)
	for _, s := range recent {
		assert.Equal(t, alice.ID, s.UserID)
		require.NotNil(t, s.Username())
		assert.Equal(t, "alice", *s.Username())
	}
}
