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

// DoubleNegation eliminates a doubled negation: !!A <=> A.
type DoubleNegation struct{}

// Name implementation for the Rule interface.
func (r DoubleNegation) Name() string {
	return "neg"
}

// CanApply implementation for the Rule interface.
func (r DoubleNegation) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Negation); ok {
		_, ok := e.Inner.(*logic.Negation)
		return ok
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r DoubleNegation) Apply(expr logic.Expr) logic.Expr {
	e := expr.(*logic.Negation)
	return e.Inner.(*logic.Negation).Inner
}

// ExcludedMiddle collapses a disjunction of an expression with its own
// negation to truth: A | !A <=> true.  Both orderings are recognised.
type ExcludedMiddle struct{}

// Name implementation for the Rule interface.
func (r ExcludedMiddle) Name() string {
	return "lem"
}

// CanApply implementation for the Rule interface.
func (r ExcludedMiddle) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Disjunct); ok {
		return complementary(e.Left, e.Right)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r ExcludedMiddle) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("excluded middle not applicable")
	}
	//
	return logic.Truth(true)
}

// Contradiction collapses a conjunction of an expression with its own
// negation to falsehood: A & !A <=> false.  Both orderings are recognised.
type Contradiction struct{}

// Name implementation for the Rule interface.
func (r Contradiction) Name() string {
	return "contr"
}

// CanApply implementation for the Rule interface.
func (r Contradiction) CanApply(expr logic.Expr) bool {
	if e, ok := expr.(*logic.Conjunct); ok {
		return complementary(e.Left, e.Right)
	}
	//
	return false
}

// Apply implementation for the Rule interface.
func (r Contradiction) Apply(expr logic.Expr) logic.Expr {
	if !r.CanApply(expr) {
		panic("contradiction not applicable")
	}
	//
	return logic.Truth(false)
}

// complementary checks whether either expression is the direct negation of
// the other.
func complementary(left logic.Expr, right logic.Expr) bool {
	if n, ok := right.(*logic.Negation); ok && left.Equals(n.Inner) {
		return true
	}
	//
	if n, ok := left.(*logic.Negation); ok && right.Equals(n.Inner) {
		return true
	}
	//
	return false
}
