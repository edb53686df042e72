package prover

import (
	"testing"

	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReachableForms_None(t *testing.T) {
	assert.Equal(t, uint(0), ReachableForms(vP, catalog, 5, 10).Size())
	assert.Equal(t, uint(0), ReachableForms(logic.Not(vQ), catalog, 5, 10).Size())
}

func Test_ReachableForms_Idempotent(t *testing.T) {
	forms := ReachableForms(logic.And(vP, vP), catalog, 3, 10)
	// Idempotence collapses to the bare variable, commutation re-derives the
	// start formula itself.
	assert.True(t, forms.Contains(vP))
	assert.True(t, forms.Contains(logic.And(vP, vP)))
}

func Test_ReachableForms_DepthZero(t *testing.T) {
	// Depth zero admits exactly one round of rewrites, with no recursion into
	// the results.
	forms := ReachableForms(logic.Not(logic.Not(vP)), catalog, 0, 10)
	//
	assert.Equal(t, uint(1), forms.Size())
	assert.True(t, forms.Contains(vP))
}

func Test_ReachableForms_DepthGrowsSet(t *testing.T) {
	var (
		start   = logic.Implies(vP, vQ)
		shallow = ReachableForms(start, catalog, 0, 12)
		deeper  = ReachableForms(start, catalog, 2, 12)
	)
	//
	assert.Less(t, shallow.Size(), deeper.Size())
	//
	for _, form := range shallow.Items() {
		assert.True(t, deeper.Contains(form))
	}
	// Two steps suffice for the contrapositive's eliminated form.
	assert.True(t, deeper.Contains(logic.Or(logic.Not(logic.Not(vQ)), logic.Not(vP))))
}

func Test_ReachableForms_SizeCeiling(t *testing.T) {
	// A start formula beyond the ceiling is not explored at all.
	forms := ReachableForms(logic.And(vP, vQ), catalog, 5, 2)
	assert.Equal(t, uint(0), forms.Size())
	// Oversized results are still recorded, just never expanded further.
	forms = ReachableForms(logic.Iff(vP, vQ), catalog, 1, 3)
	assert.True(t, forms.Contains(
		logic.And(logic.Implies(vP, vQ), logic.Implies(vQ, vP))))
}

func Test_ReachableForms_AllEquivalent(t *testing.T) {
	start := logic.Implies(vP, logic.Or(vQ, logic.Truth(false)))
	//
	forms := ReachableForms(start, catalog, 2, 12)
	require.NotZero(t, forms.Size())
	//
	for _, form := range forms.Items() {
		equivalent, err := logic.Equivalent(start, form)
		require.NoError(t, err)
		assert.True(t, equivalent, "reached inequivalent form %s", form)
	}
}

func Test_ReachableForms_Deterministic(t *testing.T) {
	var (
		start = logic.Not(logic.And(vP, vQ))
		first = ReachableForms(start, catalog, 3, 10)
	)
	//
	for i := 0; i < 3; i++ {
		next := ReachableForms(start, catalog, 3, 10)
		require.Equal(t, first.Size(), next.Size())
		//
		for _, form := range first.Items() {
			assert.True(t, next.Contains(form))
		}
	}
}
