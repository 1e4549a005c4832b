//go:build integration

package repo

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
	"github.com/light-bringer/autocat-service/internal/pkg/committer"
)

// Runs against the Spanner emulator with the schema from migrations/spanner
// applied (cmd/migrate).
func testSpannerDB() string {
	if db := os.Getenv("SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/autocat-test"
}

func setupSpannerStore(t *testing.T) *SpannerStore {
	t.Helper()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, testSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")
	t.Cleanup(client.Close)

	return NewSpannerStore(client, committer.NewCommitter(client))
}

func TestSpannerStore_LoadAndRead(t *testing.T) {
	store := setupSpannerStore(t)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, fixtures.Summaries(), fixtures.Details()))

	all, err := store.AllSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 15)
	assert.Equal(t, fixtures.Summaries(), all)

	d, found, err := store.DetailByKey(ctx, "1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fixtures.Details()["1"], d)

	_, found, err = store.DetailByKey(ctx, "5")
	require.NoError(t, err)
	assert.False(t, found)

	d, all, found, err = store.DetailWithSummaries(ctx, "2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fixtures.Details()["2"], d)
	assert.Equal(t, fixtures.Summaries(), all)

	_, all, found, err = store.DetailWithSummaries(ctx, "5")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, all)
}

func TestSpannerStore_LoadReplaces(t *testing.T) {
	store := setupSpannerStore(t)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, fixtures.Summaries(), fixtures.Details()))
	require.NoError(t, store.Load(ctx, fixtures.Summaries()[2:4], nil))

	all, err := store.AllSummaries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "3", all[0].Key)
}
