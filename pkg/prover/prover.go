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

// Package prover searches the space of equivalence-preserving rewrites of a
// propositional formula.  The space is unbounded (several rules grow their
// operand), hence every search carries a mandatory structural size ceiling,
// and the explorer additionally a depth ceiling.  A search which exhausts its
// bounds without success is a legitimate negative result, not an error.
package prover

import (
	"slices"

	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/proofgen/go-proofgen/pkg/rules"
	"github.com/proofgen/go-proofgen/pkg/util"
)

// proofNode ties a discovered formula back to the formula it was rewritten
// from.  Nodes form a tree rooted at the start expression; reconstructing a
// proof is a walk along parent links.
type proofNode struct {
	expr logic.Expr
	// rewrite which produced expr from the parent's expression.  Unused on
	// the root node.
	rewrite Rewrite
	parent  *proofNode
}

// FindPath searches breadth-first for a minimal sequence of rewrites
// transforming the start formula into the goal.  Formulas whose size exceeds
// maxSize are never expanded, which both bounds the search and means a proof
// passing through a larger intermediate formula is reported as not found.
// The second result distinguishes an empty proof (start equals goal) from an
// unsuccessful search.
//
// For fixed inputs the result is fully deterministic: the FIFO frontier
// guarantees a minimal number of steps within the bound, and ties are broken
// first by catalog order then by position (root before left before right).
func FindPath(start logic.Expr, goal logic.Expr, catalog []rules.Rule, maxSize uint) ([]Rewrite, bool) {
	var (
		visited = util.NewHashSet[logic.Expr](256)
		queue   = []*proofNode{{start, Rewrite{}, nil}}
	)
	//
	visited.Insert(start)
	//
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		//
		if node.expr.Equals(goal) {
			return backtrack(node), true
		}
		// Discard without expanding anything beyond the size ceiling.
		if node.expr.Size() > maxSize {
			continue
		}
		//
		for _, rw := range Rewrites(node.expr, catalog) {
			if !visited.Insert(rw.Result) {
				queue = append(queue, &proofNode{rw.Result, rw, node})
			}
		}
	}
	// Exhausted the bounded space without reaching the goal.
	return nil, false
}

// backtrack reconstructs the proof leading to a given node by walking parent
// links back to the root, then reversing so that the first element is the
// first rewrite away from the start formula.
func backtrack(node *proofNode) []Rewrite {
	var path []Rewrite
	//
	for ; node.parent != nil; node = node.parent {
		path = append(path, node.rewrite)
	}
	//
	slices.Reverse(path)
	//
	return path
}
