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

// Package rules provides the catalog of equivalence-preserving rewrite laws
// over propositional formulas.  Every rule is stateless and pure: CanApply is
// a structural guard which is total over all expressions, whilst Apply
// produces a new, logically equivalent expression and never mutates its
// input.  Rules sharing a logical family share a tag (e.g. both De Morgan
// directions are tagged "dm"), which is the name recorded against proof
// steps.
package rules

import (
	"github.com/proofgen/go-proofgen/pkg/logic"
)

// Rule describes a single rewrite law.
type Rule interface {
	// Name returns the stable tag identifying this rule's family, used for
	// labelling proof steps.
	Name() string
	// CanApply determines whether this rule matches the shape of a given
	// expression.  This never fails, regardless of the expression given.
	CanApply(expr logic.Expr) bool
	// Apply rewrites a given expression into an equivalent one.  The
	// expression must satisfy CanApply; applying a rule to a non-matching
	// expression is a caller error and panics.
	Apply(expr logic.Expr) logic.Expr
}

// isTruth checks whether an expression is a boolean constant with the given
// value.
func isTruth(expr logic.Expr, val bool) bool {
	if c, ok := expr.(*logic.Constant); ok {
		return c.Value == val
	}
	//
	return false
}
