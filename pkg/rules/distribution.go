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

// DistributeAnd distributes a conjunction over a disjunction:
// A & (B | C) <=> (A & B) | (A & C).
type DistributeAnd struct{}

// Name implementation for the Rule interface.
func (r DistributeAnd) Name() string {
	return "distr"
}

// CanApply implementation for the Rule interface.
func (r DistributeAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		_, ok := e.Right.(*logic.Disjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DistributeAnd) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Conjunct)
	right := e.Right.(*logic.Disjunct)
	//
	return logic.Or(logic.And(e.Left, right.Left), logic.And(e.Left, right.Right))
}

// DistributeOr distributes a disjunction over a conjunction:
// A | (B & C) <=> (A | B) & (A | C).
type DistributeOr struct{}

// Name implementation for the Rule interface.
func (r DistributeOr) Name() string {
	return "distr"
}

// CanApply implementation for the Rule interface.
func (r DistributeOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		_, ok := e.Right.(*logic.Conjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DistributeOr) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	right := e.Right.(*logic.Conjunct)
	//
	return logic.And(logic.Or(e.Left, right.Left), logic.Or(e.Left, right.Right))
}

// FactorAnd undistributes a common left conjunct:
// (A & B) | (A & C) <=> A & (B | C).
type FactorAnd struct{}

// Name implementation for the Rule interface.
func (r FactorAnd) Name() string {
	return "distr"
}

// CanApply implementation for the Rule interface.
func (r FactorAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		left, lok := e.Left.(*logic.Conjunct)
		right, rok := e.Right.(*logic.Conjunct)
		//
		return lok && rok && left.Left.Equals(right.Left)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r FactorAnd) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("factoring not applicable")
	}
	//
	e := expr.(*logic.Disjunct)
	left := e.Left.(*logic.Conjunct)
	right := e.Right.(*logic.Conjunct)
	//
	return logic.And(left.Left, logic.Or(left.Right, right.Right))
}

// FactorOr undistributes a common left disjunct:
// (A | B) & (A | C) <=> A | (B & C).
type FactorOr struct{}

// Name implementation for the Rule interface.
func (r FactorOr) Name() string {
	return "distr"
}

// CanApply implementation for the Rule interface.
func (r FactorOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		left, lok := e.Left.(*logic.Disjunct)
		right, rok := e.Right.(*logic.Disjunct)
		//
		return lok && rok && left.Left.Equals(right.Left)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r FactorOr) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("factoring not applicable")
	}
	//
	e := expr.(*logic.Conjunct)
	left := e.Left.(*logic.Disjunct)
	right := e.Right.(*logic.Disjunct)
	//
	return logic.Or(left.Left, logic.And(left.Right, right.Right))
}
