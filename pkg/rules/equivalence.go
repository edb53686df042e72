// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rules

import (
	"github.com/proofgen/go-proofgen/pkg/logic"
)

// Idempotence collapses a conjunction or disjunction of identical operands:
// A & A <=> A, and likewise A | A <=> A.
type Idempotence struct{}

// Name implementation for the Rule interface.
func (r Idempotence) Name() string {
	return "idemp"
}

// CanApply implementation for the Rule interface.
func (r Idempotence) CanApply(expr logic.Expr) bool {
	switch e := expr.(type) {
	case *logic.Conjunct:
		return e.Left.Equals(e.Right)
	case *logic.Disjunct:
		return e.Left.Equals(e.Right)
	default:
		return false
	}
}

// Apply implementation for the Rule interface.
func (r Idempotence) Apply(expr logic.Expr) logic.Expr {
	switch e := expr.(type) {
	case *logic.Conjunct:
		if e.Left.Equals(e.Right) {
			return e.Left
		}
	case *logic.Disjunct:
		if e.Left.Equals(e.Right) {
			return e.Left
		}
	}
	//
	panic("idempotence not applicable")
}

// ExpandBiconditional unfolds a biconditional into its two implications:
// A <=> B becomes (A => B) & (B => A).
type ExpandBiconditional struct{}

// Name implementation for the Rule interface.
func (r ExpandBiconditional) Name() string {
	return "equiv"
}

// CanApply implementation for the Rule interface.
func (r ExpandBiconditional) CanApply(expr logic.Expr) bool {
	_, ok := expr.(*logic.Biconditional)
	return ok
}

// Apply implementation for the Rule interface.
func (r ExpandBiconditional) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Biconditional)
	//
	return logic.And(logic.Implies(e.Left, e.Right), logic.Implies(e.Right, e.Left))
}

// CollapseBiconditional folds a conjunction of converse implications back
// into a biconditional: (A => B) & (B => A) becomes A <=> B.
type CollapseBiconditional struct{}

// Name implementation for the Rule interface.
func (r CollapseBiconditional) Name() string {
	return "equiv"
}

// CanApply implementation for the Rule interface.
func (r CollapseBiconditional) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		left, lok := e.Left.(*logic.Implication)
		right, rok := e.Right.(*logic.Implication)
		//
		return lok && rok && left.Left.Equals(right.Right) && left.Right.Equals(right.Left)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r CollapseBiconditional) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("biconditional collapse not applicable")
	}
	//
	left := expr.(*logic.Conjunct).Left.(*logic.Implication)
	//
	return logic.Iff(left.Left, left.Right)
}
