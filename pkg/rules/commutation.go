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

// CommuteAnd applies commutativity of conjunction: A & B <=> B & A.
type CommuteAnd struct{}

// Name implementation for the Rule interface.
func (r CommuteAnd) Name() string {
	return "comm_assoc"
}

// CanApply implementation for the Rule interface.
func (r CommuteAnd) CanApply(expr logic.Expr) bool {
	_, ok := expr.(*logic.Conjunct)
	return ok
}

// Apply implementation for the Rule interface.
func (r CommuteAnd) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Conjunct)
	return logic.And(e.Right, e.Left)
}

// CommuteOr applies commutativity of disjunction: A | B <=> B | A.
type CommuteOr struct{}

// Name implementation for the Rule interface.
func (r CommuteOr) Name() string {
	return "comm_assoc"
}

// CanApply implementation for the Rule interface.
func (r CommuteOr) CanApply(expr logic.Expr) bool {
	_, ok := expr.(*logic.Disjunct)
	return ok
}

// Apply implementation for the Rule interface.
func (r CommuteOr) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	return logic.Or(e.Right, e.Left)
}

// CommuteIff applies commutativity of the biconditional: A <=> B becomes
// B <=> A.
type CommuteIff struct{}

// Name implementation for the Rule interface.
func (r CommuteIff) Name() string {
	return "comm_assoc"
}

// CanApply implementation for the Rule interface.
func (r CommuteIff) CanApply(expr logic.Expr) bool {
	_, ok := expr.(*logic.Biconditional)
	return ok
}

// Apply implementation for the Rule interface.
func (r CommuteIff) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Biconditional)
	return logic.Iff(e.Right, e.Left)
}

// RotateAnd re-associates a left-nested conjunction: (A & B) & C becomes
// B & (A & C).  Together with CommuteAnd this generates every ordering of a
// conjunction chain.
type RotateAnd struct{}

// Name implementation for the Rule interface.
func (r RotateAnd) Name() string {
	return "comm_assoc"
}

// CanApply implementation for the Rule interface.
func (r RotateAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		_, ok := e.Left.(*logic.Conjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r RotateAnd) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Conjunct)
	left := e.Left.(*logic.Conjunct)
	//
	return logic.And(left.Right, logic.And(left.Left, e.Right))
}

// RotateOr re-associates a left-nested disjunction: (A | B) | C becomes
// B | (A | C).
type RotateOr struct{}

// Name implementation for the Rule interface.
func (r RotateOr) Name() string {
	return "comm_assoc"
}

// CanApply implementation for the Rule interface.
func (r RotateOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		_, ok := e.Left.(*logic.Disjunct)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r RotateOr) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	left := e.Left.(*logic.Disjunct)
	//
	return logic.Or(left.Right, logic.Or(left.Left, e.Right))
}
