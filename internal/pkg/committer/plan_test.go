package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPlan(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.True(t, plan.IsEmpty())

	plan.Add(spanner.Delete("vehicles", spanner.AllKeys()))
	plan.AddMultiple([]*spanner.Mutation{
		spanner.InsertOrUpdate("vehicles", []string{"vehicle_key"}, []interface{}{"1"}),
		nil,
		spanner.InsertOrUpdate("vehicles", []string{"vehicle_key"}, []interface{}{"2"}),
	})

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 3, plan.Count())
	assert.Len(t, plan.Mutations(), 3)
}

func TestCommitter_ApplyEmptyPlanIsNoop(t *testing.T) {
	// No client is needed when there is nothing to write.
	c := NewCommitter(nil)
	require.NoError(t, c.Apply(context.Background(), NewPlan()))
}
