package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/grapple/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masteryTestSetup(t *testing.T) (*SQLiteMasteryRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)

	u := testutil.NewTestUser("kim")
	require.NoError(t, NewSQLiteUserRepo(db).Create(context.Background(), u))

	return NewSQLiteMasteryRepo(db), u.ID
}

func TestMasteryRepo_IncrementCreatesThenAccumulates(t *testing.T) {
	repo, userID := masteryTestSetup(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Increment(ctx, userID, "암바", 0.1, at))
	require.NoError(t, repo.Increment(ctx, userID, "암바", 0.1, at.Add(time.Hour)))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "암바", records[0].TechniqueName)
	assert.InDelta(t, 0.2, records[0].Level, 1e-9)
	assert.Equal(t, 2, records[0].PracticeCount)
	assert.True(t, at.Add(time.Hour).Equal(records[0].LastPracticed))
}

func TestMasteryRepo_LevelIsCappedAtOne(t *testing.T) {
	repo, userID := masteryTestSetup(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Increment(ctx, userID, "기요틴", 0.1, time.Now()))
	}

	levels, err := repo.Levels(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, levels["기요틴"])
}

func TestMasteryRepo_ListOrdersByLevel(t *testing.T) {
	repo, userID := masteryTestSetup(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Increment(ctx, userID, "암바", 0.1, now))
	require.NoError(t, repo.Increment(ctx, userID, "키무라", 0.1, now))
	require.NoError(t, repo.Increment(ctx, userID, "키무라", 0.1, now))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "키무라", records[0].TechniqueName)
	assert.Equal(t, "암바", records[1].TechniqueName)
}

func TestMasteryRepo_UnknownUserRejected(t *testing.T) {
	repo, _ := masteryTestSetup(t)

	err := repo.Increment(context.Background(), "ghost", "암바", 0.1, time.Now())
	assert.Error(t, err)
}
