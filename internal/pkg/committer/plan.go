// Package committer collects Spanner mutations into a plan and applies
// them in one transaction.
//
// Model writers return mutations instead of applying them, so a catalog
// load either replaces every row or none:
//
//	plan := committer.NewPlan()
//	plan.Add(vehicles.DeleteAllMut())
//	for i, v := range summaries {
//	    plan.Add(vehicles.InsertMut(m_vehicle.FromSummary(i, v)))
//	}
//	return c.Apply(ctx, plan)
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered list of mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *CommitPlan {
	return &CommitPlan{}
}

// Add appends mut. Nil mutations are skipped.
func (p *CommitPlan) Add(mut *spanner.Mutation) {
	if mut == nil {
		return
	}
	p.mutations = append(p.mutations, mut)
}

func (p *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, m := range muts {
		p.Add(m)
	}
}

func (p *CommitPlan) Mutations() []*spanner.Mutation { return p.mutations }

func (p *CommitPlan) IsEmpty() bool { return len(p.mutations) == 0 }

func (p *CommitPlan) Count() int { return len(p.mutations) }

// Committer applies plans through a Spanner client.
type Committer struct {
	client *spanner.Client
}

func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply writes the plan in a single read-write transaction. An empty plan
// is a no-op and never touches the client.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("apply catalog mutations: %w", err)
	}
	return nil
}
