package rules

import (
	"testing"

	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vP = logic.Var("P")
	vQ = logic.Var("Q")
	vR = logic.Var("R")
)

func Test_Rule_CommuteAnd(t *testing.T) {
	testRewrite(t, CommuteAnd{}, "comm_assoc", logic.And(vP, vQ), logic.And(vQ, vP))
	testInapplicable(t, CommuteAnd{}, logic.Or(vP, vQ), vP, logic.Truth(true))
}

func Test_Rule_CommuteOr(t *testing.T) {
	testRewrite(t, CommuteOr{}, "comm_assoc", logic.Or(vP, vQ), logic.Or(vQ, vP))
	testInapplicable(t, CommuteOr{}, logic.And(vP, vQ), logic.Not(vP))
}

func Test_Rule_CommuteIff(t *testing.T) {
	testRewrite(t, CommuteIff{}, "comm_assoc", logic.Iff(vP, vQ), logic.Iff(vQ, vP))
	testInapplicable(t, CommuteIff{}, logic.Implies(vP, vQ))
}

func Test_Rule_RotateAnd(t *testing.T) {
	testRewrite(t, RotateAnd{}, "comm_assoc",
		logic.And(logic.And(vP, vQ), vR),
		logic.And(vQ, logic.And(vP, vR)))
	// only fires on a left-nested conjunction
	testInapplicable(t, RotateAnd{}, logic.And(vP, logic.And(vQ, vR)))
}

func Test_Rule_RotateOr(t *testing.T) {
	testRewrite(t, RotateOr{}, "comm_assoc",
		logic.Or(logic.Or(vP, vQ), vR),
		logic.Or(vQ, logic.Or(vP, vR)))
	testInapplicable(t, RotateOr{}, logic.Or(vP, logic.Or(vQ, vR)))
}

func Test_Rule_DoubleNegation(t *testing.T) {
	testRewrite(t, DoubleNegation{}, "neg", logic.Not(logic.Not(vP)), vP)
	testRewrite(t, DoubleNegation{}, "neg",
		logic.Not(logic.Not(logic.And(vP, vQ))), logic.And(vP, vQ))
	testInapplicable(t, DoubleNegation{}, logic.Not(vP), vP)
}

func Test_Rule_ExcludedMiddle(t *testing.T) {
	// both literal orderings
	testRewrite(t, ExcludedMiddle{}, "lem", logic.Or(vP, logic.Not(vP)), logic.Truth(true))
	testRewrite(t, ExcludedMiddle{}, "lem", logic.Or(logic.Not(vP), vP), logic.Truth(true))
	testInapplicable(t, ExcludedMiddle{},
		logic.Or(vP, logic.Not(vQ)),
		logic.And(vP, logic.Not(vP)))
	// result is a bare constant
	assert.Equal(t, "TRUE", ExcludedMiddle{}.Apply(logic.Or(vP, logic.Not(vP))).Debug())
}

func Test_Rule_Contradiction(t *testing.T) {
	testRewrite(t, Contradiction{}, "contr", logic.And(vP, logic.Not(vP)), logic.Truth(false))
	testRewrite(t, Contradiction{}, "contr", logic.And(logic.Not(vP), vP), logic.Truth(false))
	testInapplicable(t, Contradiction{},
		logic.And(vP, logic.Not(vQ)),
		logic.Or(vP, logic.Not(vP)))
}

func Test_Rule_DeMorganAnd(t *testing.T) {
	testRewrite(t, DeMorganAnd{}, "dm",
		logic.Not(logic.And(vP, vQ)),
		logic.Or(logic.Not(vP), logic.Not(vQ)))
	// fires only on a negated conjunction, never a loose one
	testInapplicable(t, DeMorganAnd{}, logic.And(vP, vQ), logic.Not(logic.Or(vP, vQ)))
}

func Test_Rule_DeMorganOr(t *testing.T) {
	testRewrite(t, DeMorganOr{}, "dm",
		logic.Not(logic.Or(vP, vQ)),
		logic.And(logic.Not(vP), logic.Not(vQ)))
	testInapplicable(t, DeMorganOr{}, logic.Or(vP, vQ), logic.Not(logic.And(vP, vQ)))
}

func Test_Rule_DeMorganAndReverse(t *testing.T) {
	testRewrite(t, DeMorganAndReverse{}, "dm",
		logic.Or(logic.Not(vP), logic.Not(vQ)),
		logic.Not(logic.And(vP, vQ)))
	// both operands must be negations
	testInapplicable(t, DeMorganAndReverse{},
		logic.Or(logic.Not(vP), vQ),
		logic.Or(vP, logic.Not(vQ)))
}

func Test_Rule_DeMorganOrReverse(t *testing.T) {
	testRewrite(t, DeMorganOrReverse{}, "dm",
		logic.And(logic.Not(vP), logic.Not(vQ)),
		logic.Not(logic.Or(vP, vQ)))
	testInapplicable(t, DeMorganOrReverse{}, logic.And(logic.Not(vP), vQ))
}

func Test_Rule_EliminateImplication(t *testing.T) {
	testRewrite(t, EliminateImplication{}, "imp_elim",
		logic.Implies(vP, vQ),
		logic.Or(logic.Not(vP), vQ))
	testInapplicable(t, EliminateImplication{}, logic.Or(logic.Not(vP), vQ))
}

func Test_Rule_IntroduceImplication(t *testing.T) {
	testRewrite(t, IntroduceImplication{}, "imp_elim",
		logic.Or(logic.Not(vP), vQ),
		logic.Implies(vP, vQ))
	// negation must be the left operand
	testInapplicable(t, IntroduceImplication{}, logic.Or(vP, logic.Not(vQ)))
}

func Test_Rule_DistributeAnd(t *testing.T) {
	testRewrite(t, DistributeAnd{}, "distr",
		logic.And(vP, logic.Or(vQ, vR)),
		logic.Or(logic.And(vP, vQ), logic.And(vP, vR)))
	testInapplicable(t, DistributeAnd{}, logic.And(logic.Or(vQ, vR), vP))
}

func Test_Rule_DistributeOr(t *testing.T) {
	testRewrite(t, DistributeOr{}, "distr",
		logic.Or(vP, logic.And(vQ, vR)),
		logic.And(logic.Or(vP, vQ), logic.Or(vP, vR)))
	testInapplicable(t, DistributeOr{}, logic.Or(logic.And(vQ, vR), vP))
}

func Test_Rule_FactorAnd(t *testing.T) {
	testRewrite(t, FactorAnd{}, "distr",
		logic.Or(logic.And(vP, vQ), logic.And(vP, vR)),
		logic.And(vP, logic.Or(vQ, vR)))
	// common operand must lead both conjunctions
	testInapplicable(t, FactorAnd{}, logic.Or(logic.And(vP, vQ), logic.And(vQ, vR)))
}

func Test_Rule_FactorOr(t *testing.T) {
	testRewrite(t, FactorOr{}, "distr",
		logic.And(logic.Or(vP, vQ), logic.Or(vP, vR)),
		logic.Or(vP, logic.And(vQ, vR)))
	testInapplicable(t, FactorOr{}, logic.And(logic.Or(vP, vQ), logic.Or(vR, vP)))
}

func Test_Rule_Contrapositive(t *testing.T) {
	testRewrite(t, Contrapositive{}, "contrapos",
		logic.Implies(vP, vQ),
		logic.Implies(logic.Not(vQ), logic.Not(vP)))
	// a single negated operand is still fair game
	testRewrite(t, Contrapositive{}, "contrapos",
		logic.Implies(logic.Not(vP), vQ),
		logic.Implies(logic.Not(vQ), logic.Not(logic.Not(vP))))
	// guarded against already-contraposed forms
	testInapplicable(t, Contrapositive{},
		logic.Implies(logic.Not(vP), logic.Not(vQ)))
}

func Test_Rule_Idempotence(t *testing.T) {
	testRewrite(t, Idempotence{}, "idemp", logic.And(vP, vP), vP)
	testRewrite(t, Idempotence{}, "idemp", logic.Or(vP, vP), vP)
	testRewrite(t, Idempotence{}, "idemp",
		logic.And(logic.Not(vQ), logic.Not(vQ)), logic.Not(vQ))
	testInapplicable(t, Idempotence{}, logic.And(vP, vQ), logic.Iff(vP, vP))
}

func Test_Rule_ExpandBiconditional(t *testing.T) {
	testRewrite(t, ExpandBiconditional{}, "equiv",
		logic.Iff(vP, vQ),
		logic.And(logic.Implies(vP, vQ), logic.Implies(vQ, vP)))
	testInapplicable(t, ExpandBiconditional{}, logic.Implies(vP, vQ))
}

func Test_Rule_CollapseBiconditional(t *testing.T) {
	testRewrite(t, CollapseBiconditional{}, "equiv",
		logic.And(logic.Implies(vP, vQ), logic.Implies(vQ, vP)),
		logic.Iff(vP, vQ))
	// implications must be converses of each other
	testInapplicable(t, CollapseBiconditional{},
		logic.And(logic.Implies(vP, vQ), logic.Implies(vP, vQ)))
}

func Test_Rule_EliminateIdentity(t *testing.T) {
	testRewrite(t, EliminateIdentity{}, "simp1", logic.And(vP, logic.Truth(true)), vP)
	testRewrite(t, EliminateIdentity{}, "simp1", logic.And(logic.Truth(true), vP), vP)
	testRewrite(t, EliminateIdentity{}, "simp1", logic.Or(vP, logic.Truth(false)), vP)
	testRewrite(t, EliminateIdentity{}, "simp1", logic.Or(logic.Truth(false), vP), vP)
	testInapplicable(t, EliminateIdentity{},
		logic.And(vP, logic.Truth(false)),
		logic.Or(vP, logic.Truth(true)))
}

func Test_Rule_AnnihilateOr(t *testing.T) {
	testRewrite(t, AnnihilateOr{}, "simp1", logic.Or(vP, logic.Truth(true)), logic.Truth(true))
	testRewrite(t, AnnihilateOr{}, "simp1", logic.Or(logic.Truth(true), vP), logic.Truth(true))
	testInapplicable(t, AnnihilateOr{}, logic.Or(vP, logic.Truth(false)))
}

func Test_Rule_AnnihilateAnd(t *testing.T) {
	testRewrite(t, AnnihilateAnd{}, "simp1", logic.And(vP, logic.Truth(false)), logic.Truth(false))
	testRewrite(t, AnnihilateAnd{}, "simp1", logic.And(logic.Truth(false), vP), logic.Truth(false))
	testInapplicable(t, AnnihilateAnd{}, logic.And(vP, logic.Truth(true)))
}

func Test_Rule_AbsorbOr(t *testing.T) {
	testRewrite(t, AbsorbOr{}, "simp2", logic.Or(vP, logic.And(vP, vQ)), vP)
	testRewrite(t, AbsorbOr{}, "simp2", logic.Or(vP, logic.And(vQ, vP)), vP)
	testRewrite(t, AbsorbOr{}, "simp2", logic.Or(logic.And(vP, vQ), vP), vP)
	testInapplicable(t, AbsorbOr{}, logic.Or(vP, logic.And(vQ, vR)))
}

func Test_Rule_AbsorbAnd(t *testing.T) {
	testRewrite(t, AbsorbAnd{}, "simp2", logic.And(vP, logic.Or(vP, vQ)), vP)
	testRewrite(t, AbsorbAnd{}, "simp2", logic.And(vP, logic.Or(vQ, vP)), vP)
	testRewrite(t, AbsorbAnd{}, "simp2", logic.And(logic.Or(vP, vQ), vP), vP)
	testInapplicable(t, AbsorbAnd{}, logic.And(vP, logic.Or(vQ, vR)))
}

func Test_Rule_ApplyContractViolationPanics(t *testing.T) {
	assert.Panics(t, func() { ExcludedMiddle{}.Apply(vP) })
	assert.Panics(t, func() { Idempotence{}.Apply(logic.And(vP, vQ)) })
	assert.Panics(t, func() { Contrapositive{}.Apply(logic.Implies(logic.Not(vP), logic.Not(vQ))) })
}

func Test_Catalog_Fixed(t *testing.T) {
	catalog := Catalog()
	//
	assert.Len(t, catalog, 27)
	// catalog order is part of the engine's contract
	assert.Equal(t, CommuteAnd{}, catalog[0])
	assert.Equal(t, DoubleNegation{}, catalog[5])
	assert.Equal(t, AbsorbAnd{}, catalog[26])
}

// Every rule in the catalog, wherever its guard holds, must rewrite to a
// logically equivalent formula.  The pool below gives every rule at least one
// expression to fire on.
func Test_Catalog_RewritesPreserveTruth(t *testing.T) {
	pool := []logic.Expr{
		logic.And(vP, vQ),
		logic.Or(vP, vQ),
		logic.Iff(vP, vQ),
		logic.And(logic.And(vP, vQ), vR),
		logic.Or(logic.Or(vP, vQ), vR),
		logic.Not(logic.Not(vP)),
		logic.Or(vP, logic.Not(vP)),
		logic.And(vP, logic.Not(vP)),
		logic.Not(logic.And(vP, vQ)),
		logic.Not(logic.Or(vP, vQ)),
		logic.Or(logic.Not(vP), logic.Not(vQ)),
		logic.And(logic.Not(vP), logic.Not(vQ)),
		logic.Implies(vP, vQ),
		logic.Or(logic.Not(vP), vQ),
		logic.And(vP, logic.Or(vQ, vR)),
		logic.Or(vP, logic.And(vQ, vR)),
		logic.Or(logic.And(vP, vQ), logic.And(vP, vR)),
		logic.And(logic.Or(vP, vQ), logic.Or(vP, vR)),
		logic.And(vP, vP),
		logic.Or(vP, vP),
		logic.And(logic.Implies(vP, vQ), logic.Implies(vQ, vP)),
		logic.And(vP, logic.Truth(true)),
		logic.Or(vP, logic.Truth(false)),
		logic.Or(vP, logic.Truth(true)),
		logic.And(vP, logic.Truth(false)),
		logic.Or(vP, logic.And(vP, vQ)),
		logic.And(vP, logic.Or(vP, vQ)),
	}
	//
	for _, rule := range Catalog() {
		fired := false
		//
		for _, expr := range pool {
			if !rule.CanApply(expr) {
				continue
			}
			//
			fired = true
			rewritten := rule.Apply(expr)
			//
			equivalent, err := logic.Equivalent(expr, rewritten)
			require.NoError(t, err)
			assert.True(t, equivalent, "%s rewrote %s into inequivalent %s",
				rule.Name(), expr, rewritten)
		}
		//
		assert.True(t, fired, "rule %T never fired on the pool", rule)
	}
}

func testRewrite(t *testing.T, rule Rule, tag string, before logic.Expr, after logic.Expr) {
	assert.Equal(t, tag, rule.Name())
	require.True(t, rule.CanApply(before), "expected %s to match %s", tag, before)
	//
	rewritten := rule.Apply(before)
	assert.True(t, after.Equals(rewritten), "expected %s but got %s", after, rewritten)
}

func testInapplicable(t *testing.T, rule Rule, exprs ...logic.Expr) {
	for _, expr := range exprs {
		assert.False(t, rule.CanApply(expr), "%s should not match %s", rule.Name(), expr)
	}
}
