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
package prover

import (
	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/proofgen/go-proofgen/pkg/rules"
	"github.com/proofgen/go-proofgen/pkg/util"
)

// Rewrite records the application of a single rule at a single position
// within a formula, with the rest of the formula held fixed.
type Rewrite struct {
	// Rule gives the tag of the rule applied.
	Rule string
	// Site gives the sub-expression the rule fired on, prior to rewriting.
	Site logic.Expr
	// Result gives the whole formula after the rewrite.
	Result logic.Expr
}

// Rewrites computes the one-step rewrite closure of an expression: every
// formula obtainable by applying exactly one applicable rule at exactly one
// position (the root or any sub-expression).  Duplicate results, however
// produced, collapse to the first occurrence.  The returned order is
// deterministic: rules at the root in catalog order, then rewrites within the
// left subtree, then within the right.  The input is never mutated.
func Rewrites(expr logic.Expr, catalog []rules.Rule) []Rewrite {
	var (
		results []Rewrite
		seen    = util.NewHashSet[logic.Expr](32)
	)
	// Apply every matching rule at the root.
	for _, rule := range catalog {
		if rule.CanApply(expr) {
			result := rule.Apply(expr)
			//
			if !seen.Insert(result) {
				results = append(results, Rewrite{rule.Name(), expr, result})
			}
		}
	}
	// Recursively rewrite sub-expressions, rebuilding the enclosing node
	// around each rewritten child.
	switch e := expr.(type) {
	case *logic.Negation:
		for _, rw := range Rewrites(e.Inner, catalog) {
			results = include(results, seen, rw, logic.Not(rw.Result))
		}
	case *logic.Conjunct:
		results = rewriteChildren(results, seen, logic.And, e.Left, e.Right, catalog)
	case *logic.Disjunct:
		results = rewriteChildren(results, seen, logic.Or, e.Left, e.Right, catalog)
	case *logic.Implication:
		results = rewriteChildren(results, seen, logic.Implies, e.Left, e.Right, catalog)
	case *logic.Biconditional:
		results = rewriteChildren(results, seen, logic.Iff, e.Left, e.Right, catalog)
	}
	//
	return results
}

// rewriteChildren lifts the closure of each child of a binary node through
// the node itself, one child at a time.
func rewriteChildren(results []Rewrite, seen *util.HashSet[logic.Expr],
	construct func(logic.Expr, logic.Expr) logic.Expr,
	left logic.Expr, right logic.Expr, catalog []rules.Rule) []Rewrite {
	//
	for _, rw := range Rewrites(left, catalog) {
		results = include(results, seen, rw, construct(rw.Result, right))
	}
	//
	for _, rw := range Rewrites(right, catalog) {
		results = include(results, seen, rw, construct(left, rw.Result))
	}
	//
	return results
}

// include records a rewritten child lifted into a given enclosing formula,
// unless that formula has already arisen some other way.
func include(results []Rewrite, seen *util.HashSet[logic.Expr], rw Rewrite, lifted logic.Expr) []Rewrite {
	if !seen.Insert(lifted) {
		results = append(results, Rewrite{rw.Rule, rw.Site, lifted})
	}
	//
	return results
}
