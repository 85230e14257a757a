package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

func seedQuestion(t *testing.T, db *gorm.DB, category string, sub *string, text string, creator *uint, at time.Time) *entity.Question {
	t.Helper()
	q := &entity.Question{CategoryID: category, SubcategoryID: sub, Text: text, CreatedBy: creator, CreatedAt: at}
	require.NoError(t, q.SetOptions([]string{"a", "b", "c", "d"}))
	require.NoError(t, db.Create(q).Error)
	return q
}

func TestQuestionRepo_List_FiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepo(db)
	alice := createUser(t, db, "alice")

	seedQuestion(t, db, "math", strPtr("algebra"), "late", uintPtr(alice.ID), baseTime.Add(2*time.Hour))
	seedQuestion(t, db, "math", nil, "early", nil, baseTime)
	seedQuestion(t, db, "geo", nil, "other", nil, baseTime.Add(time.Hour))

	all, err := repo.List(context.Background(), repository.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "early", all[0].Text)
	assert.Equal(t, "other", all[1].Text)
	assert.Equal(t, "late", all[2].Text)
	require.NotNil(t, all[2].Creator, "автор должен подгружаться")
	assert.Equal(t, "alice", all[2].Creator.Username)

	math, err := repo.List(context.Background(), repository.QuestionFilter{CategoryID: strPtr("math")})
	require.NoError(t, err)
	assert.Len(t, math, 2)

	algebra, err := repo.List(context.Background(), repository.QuestionFilter{
		CategoryID:    strPtr("math"),
		SubcategoryID: strPtr("algebra"),
	})
	require.NoError(t, err)
	require.Len(t, algebra, 1)
	assert.Equal(t, "late", algebra[0].Text)
}

func TestQuestionRepo_ListByCreator_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepo(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	seedQuestion(t, db, "math", nil, "first", uintPtr(alice.ID), baseTime)
	seedQuestion(t, db, "math", nil, "second", uintPtr(alice.ID), baseTime.Add(time.Minute))
	seedQuestion(t, db, "math", nil, "bob's", uintPtr(bob.ID), baseTime.Add(2*time.Minute))

	mine, err := repo.ListByCreator(context.Background(), alice.ID, repository.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "second", mine[0].Text)
	assert.Equal(t, "first", mine[1].Text)
}

func TestQuestionRepo_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepo(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	q := seedQuestion(t, db, "math", nil, "2+2?", uintPtr(alice.ID), baseTime)

	loaded, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	require.NoError(t, loaded.SetOptions([]string{"1", "2", "3", "4"}))
	loaded.CorrectIndex = 3
	loaded.Text = "2+2=?"
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "2+2=?", reloaded.Text)
	assert.Equal(t, []string{"1", "2", "3", "4"}, reloaded.Options())
	assert.Equal(t, 3, reloaded.CorrectIndex)
	assert.Equal(t, "alice", reloaded.Creator.Username)

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err = repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, q.ID), apperrors.ErrNotFound)
}
