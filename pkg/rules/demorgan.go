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

// De Morgan's laws, in all four directions.  The forward rules fire only on a
// negation whose body is the matching connective; a loose conjunction or
// disjunction is never touched.

// DeMorganAnd pushes a negation through a conjunction:
// !(A & B) <=> !A | !B.
type DeMorganAnd struct{}

// Name implementation for the Rule interface.
func (r DeMorganAnd) Name() string {
	return "dm"
}

// CanApply implementation for the Rule interface.
func (r DeMorganAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Negation); ok {
		_, ok := e.Inner.(*logic.Conjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DeMorganAnd) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Negation).Inner.(*logic.Conjunct)
	return logic.Or(logic.Not(e.Left), logic.Not(e.Right))
}

// DeMorganOr pushes a negation through a disjunction:
// !(A | B) <=> !A & !B.
type DeMorganOr struct{}

// Name implementation for the Rule interface.
func (r DeMorganOr) Name() string {
	return "dm"
}

// CanApply implementation for the Rule interface.
func (r DeMorganOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Negation); ok {
		_, ok := e.Inner.(*logic.Disjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DeMorganOr) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Negation).Inner.(*logic.Disjunct)
	return logic.And(logic.Not(e.Left), logic.Not(e.Right))
}

// DeMorganAndReverse pulls a negation out of a disjunction of negations:
// !A | !B <=> !(A & B).
type DeMorganAndReverse struct{}

// Name implementation for the Rule interface.
func (r DeMorganAndReverse) Name() string {
	return "dm"
}

// CanApply implementation for the Rule interface.
func (r DeMorganAndReverse) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		_, lok := e.Left.(*logic.Negation)
		_, rok := e.Right.(*logic.Negation)
		//
		return lok && rok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DeMorganAndReverse) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	left := e.Left.(*logic.Negation)
	right := e.Right.(*logic.Negation)
	//
	return logic.Not(logic.And(left.Inner, right.Inner))
}

// DeMorganOrReverse pulls a negation out of a conjunction of negations:
// !A & !B <=> !(A | B).
type DeMorganOrReverse struct{}

// Name implementation for the Rule interface.
func (r DeMorganOrReverse) Name() string {
	return "dm"
}

// CanApply implementation for the Rule interface.
func (r DeMorganOrReverse) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		_, lok := e.Left.(*logic.Negation)
		_, rok := e.Right.(*logic.Negation)
		//
		return lok && rok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DeMorganOrReverse) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Conjunct)
	left := e.Left.(*logic.Negation)
	right := e.Right.(*logic.Negation)
	//
	return logic.Not(logic.Or(left.Inner, right.Inner))
}
