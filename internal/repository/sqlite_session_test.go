package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/grapple/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestSetup creates the user a session belongs to.
func sessionTestSetup(t *testing.T) (*SQLiteTrainingSessionRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	u := testutil.NewTestUser("kim")
	require.NoError(t, NewSQLiteUserRepo(db).Create(ctx, u))

	return NewSQLiteTrainingSessionRepo(db), u.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestTrainingSession(userID, "가드 데이",
		testutil.WithTechniques("클로즈드 가드", "암바"),
		testutil.WithDuration(90),
		testutil.WithFeedback(0.8, 4),
	)
	require.NoError(t, repo.Create(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "가드 데이", got.Name)
	assert.Equal(t, []string{"클로즈드 가드", "암바"}, got.Techniques)
	assert.Equal(t, 90, got.DurationMin)
	assert.Equal(t, 0.8, got.CompletionRate)
	assert.Equal(t, 4, got.FeedbackScore)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_EmptyTechniquesRoundTrip(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestTrainingSession(userID, "빈 세션", testutil.WithTechniques())
	require.NoError(t, repo.Create(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Techniques)
}

func TestSessionRepo_ListByUser_NewestFirstWithLimit(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		s := testutil.NewTestTrainingSession(userID, name, testutil.WithCreatedAt(base.AddDate(0, 0, i)))
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	assert.Equal(t, "first", all[2].Name)

	limited, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "third", limited[0].Name)
	assert.Equal(t, "second", limited[1].Name)
}

func TestSessionRepo_ListByUser_OtherUserIsolated(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTrainingSession(userID, "mine")))

	others, err := repo.ListByUser(ctx, "someone-else", 10)
	require.NoError(t, err)
	assert.Empty(t, others)
}
