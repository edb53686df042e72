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

// EliminateImplication rewrites an implication as a disjunction:
// A => B <=> !A | B.
type EliminateImplication struct{}

// Name implementation for the Rule interface.
func (r EliminateImplication) Name() string {
	return "imp_elim"
}

// CanApply implementation for the Rule interface.
func (r EliminateImplication) CanApply(expr logic.Expr) bool {
	_, ok := expr.(*logic.Implication)
	return ok
}

// Apply implementation for the Rule interface.
func (r EliminateImplication) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Implication)
	return logic.Or(logic.Not(e.Left), e.Right)
}

// IntroduceImplication rewrites a disjunction with a negated left operand
// back into an implication: !A | B <=> A => B.
type IntroduceImplication struct{}

// Name implementation for the Rule interface.
func (r IntroduceImplication) Name() string {
	return "imp_elim"
}

// CanApply implementation for the Rule interface.
func (r IntroduceImplication) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		_, ok := e.Left.(*logic.Negation)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r IntroduceImplication) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	left := e.Left.(*logic.Negation)
	//
	return logic.Implies(left.Inner, e.Right)
}

// Contrapositive swaps and negates the operands of an implication:
// A => B <=> !B => !A.  The rule is guarded against implications whose
// operands are both already negations, as applying it there simply bounces
// between contraposed forms.
type Contrapositive struct{}

// Name implementation for the Rule interface.
func (r Contrapositive) Name() string {
	return "contrapos"
}

// CanApply implementation for the Rule interface.
func (r Contrapositive) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Implication); ok {
		_, lok := e.Left.(*logic.Negation)
		_, rok := e.Right.(*logic.Negation)
		//
		return !(lok && rok)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r Contrapositive) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("contrapositive not applicable")
	}
	//
	e := expr.(*logic.Implication)
	//
	return logic.Implies(logic.Not(e.Right), logic.Not(e.Left))
}
