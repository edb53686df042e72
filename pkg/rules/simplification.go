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

// EliminateIdentity removes an identity element from a binary connective:
// A & true <=> A, and A | false <=> A.  Both operand orderings are
// recognised.
type EliminateIdentity struct{}

// Name implementation for the Rule interface.
func (r EliminateIdentity) Name() string {
	return "simp1"
}

// CanApply implementation for the Rule interface.
func (r EliminateIdentity) CanApply(expr logic.Expr) bool {
	switch e := expr.(type) {
	case *logic.Conjunct:
		return isTruth(e.Left, true) || isTruth(e.Right, true)
	case *logic.Disjunct:
		return isTruth(e.Left, false) || isTruth(e.Right, false)
	default:
		return false
	}
}

// Apply implementation for the Rule interface.
func (r EliminateIdentity) Apply(expr logic.Expr) logic.Expr {
	switch e := expr.(type) {
	case *logic.Conjunct:
		if isTruth(e.Left, true) {
			return e.Right
		} else if isTruth(e.Right, true) {
			return e.Left
		}
	case *logic.Disjunct:
		if isTruth(e.Left, false) {
			return e.Right
		} else if isTruth(e.Right, false) {
			return e.Left
		}
	}
	//
	panic("identity elimination not applicable")
}

// AnnihilateOr collapses a disjunction containing truth: A | true <=> true.
// Both operand orderings are recognised, and the result is a bare constant.
type AnnihilateOr struct{}

// Name implementation for the Rule interface.
func (r AnnihilateOr) Name() string {
	return "simp1"
}

// CanApply implementation for the Rule interface.
func (r AnnihilateOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		return isTruth(e.Left, true) || isTruth(e.Right, true)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r AnnihilateOr) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("disjunction annihilation not applicable")
	}
	//
	return logic.Truth(true)
}

// AnnihilateAnd collapses a conjunction containing falsehood:
// A & false <=> false.  Both operand orderings are recognised.
type AnnihilateAnd struct{}

// Name implementation for the Rule interface.
func (r AnnihilateAnd) Name() string {
	return "simp1"
}

// CanApply implementation for the Rule interface.
func (r AnnihilateAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		return isTruth(e.Left, false) || isTruth(e.Right, false)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r AnnihilateAnd) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("conjunction annihilation not applicable")
	}
	//
	return logic.Truth(false)
}

// AbsorbOr applies absorption to a disjunction: A | (A & B) <=> A.  The
// conjunction may appear on either side, and A may be either of its
// operands.
type AbsorbOr struct{}

// Name implementation for the Rule interface.
func (r AbsorbOr) Name() string {
	return "simp2"
}

// CanApply implementation for the Rule interface.
func (r AbsorbOr) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		return absorbs(e.Left, e.Right) || absorbs(e.Right, e.Left)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r AbsorbOr) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Disjunct)
	//
	if absorbs(e.Left, e.Right) {
		return e.Left
	} else if absorbs(e.Right, e.Left) {
		return e.Right
	}
	//
	panic("absorption not applicable")
}

// AbsorbAnd applies absorption to a conjunction: A & (A | B) <=> A.  The
// disjunction may appear on either side, and A may be either of its
// operands.
type AbsorbAnd struct{}

// Name implementation for the Rule interface.
func (r AbsorbAnd) Name() string {
	return "simp2"
}

// CanApply implementation for the Rule interface.
func (r AbsorbAnd) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		return coabsorbs(e.Left, e.Right) || coabsorbs(e.Right, e.Left)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r AbsorbAnd) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Conjunct)
	//
	if coabsorbs(e.Left, e.Right) {
		return e.Left
	} else if coabsorbs(e.Right, e.Left) {
		return e.Right
	}
	//
	panic("absorption not applicable")
}

// absorbs checks whether keep absorbs other in a disjunction, i.e. other is a
// conjunction with keep as one of its operands.
func absorbs(keep logic.Expr, other logic.Expr) bool {
	if e, ok := other.(*logic.Conjunct); ok {
		return keep.Equals(e.Left) || keep.Equals(e.Right)
	}
	//
	return false
}

// coabsorbs checks whether keep absorbs other in a conjunction, i.e. other is
// a disjunction with keep as one of its operands.
func coabsorbs(keep logic.Expr, other logic.Expr) bool {
	if e, ok := other.(*logic.Disjunct); ok {
		return keep.Equals(e.Left) || keep.Equals(e.Right)
	}
	//
	return false
}
