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
package logic

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/proofgen/go-proofgen/pkg/util"
	"github.com/proofgen/go-proofgen/pkg/util/collection/set"
)

// Expr represents a node within the Abstract Syntax Tree (AST) of a
// propositional formula.  Expressions are immutable: every transformation
// produces a fresh tree, sharing unchanged subtrees with the original.  Two
// expressions are equal exactly when they have the same variant and
// recursively equal children, and hashing agrees with that equality (a
// requirement for placing expressions into a util.HashSet).
type Expr interface {
	util.Hasher[Expr]
	// Size returns the number of nodes in this expression, where leaves
	// (variables and constants) count one and every connective counts one
	// more than its children combined.  Search bounds are expressed in terms
	// of this metric.
	Size() uint
	// Eval evaluates this expression under a given assignment of variable
	// names to truth values.  Evaluation fails if the expression contains a
	// variable missing from the assignment.
	Eval(assignment map[string]bool) (bool, error)
	// Vars collects the names of all free variables in this expression into
	// the given set.
	Vars(vars *set.SortedSet[string])
	// String returns a parenthesised infix rendering of this expression
	// using the operator symbols !, &, |, => and <=>.
	String() string
	// Debug returns a canonical form naming each variant and its children,
	// suitable for literal assertions in tests.
	Debug() string
}

// Variant tags used when hashing expressions.  Each variant folds a distinct
// tag into its hashcode so that, for example, And(x,y) and Or(x,y) never
// collide by construction.
const (
	tagConstant byte = iota
	tagVariable
	tagNegation
	tagConjunct
	tagDisjunct
	tagImplication
	tagBiconditional
)

// hashNode computes a structural hashcode for a node from its variant tag and
// the hashcodes of its children.  All variants hash through this one helper,
// which keeps hashing mechanically in step with structural equality.
func hashNode(tag byte, children ...Expr) uint64 {
	var (
		hash = fnv.New64a()
		buf  [8]byte
	)
	//
	hash.Write([]byte{tag})
	//
	for _, child := range children {
		binary.BigEndian.PutUint64(buf[:], child.Hash())
		hash.Write(buf[:])
	}
	//
	return hash.Sum64()
}

// subterm renders a child expression, parenthesising it whenever it is itself
// a binary connective.  Leaves and negations bind tightly enough to stand
// bare.
func subterm(e Expr) string {
	switch e.(type) {
	case *Conjunct, *Disjunct, *Implication, *Biconditional:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}
