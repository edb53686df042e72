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

// ReachableForms explores, depth-first, every formula reachable from a
// starting formula via repeated rewrite steps, bounded both by a recursion
// depth and by the same size ceiling as FindPath.  The result is the set of
// all distinct formulas encountered; the start formula itself is included
// only if some rewrite sequence re-derives it.
func ReachableForms(start logic.Expr, catalog []rules.Rule, maxDepth uint, maxSize uint) *util.HashSet[logic.Expr] {
	forms := util.NewHashSet[logic.Expr](256)
	explore(start, catalog, 0, maxDepth, maxSize, forms)
	//
	return forms
}

func explore(expr logic.Expr, catalog []rules.Rule, depth uint, maxDepth uint, maxSize uint,
	forms *util.HashSet[logic.Expr]) {
	// Ensure termination
	if depth > maxDepth || expr.Size() > maxSize {
		return
	}
	//
	for _, rw := range Rewrites(expr, catalog) {
		if !forms.Insert(rw.Result) {
			explore(rw.Result, catalog, depth+1, maxDepth, maxSize, forms)
		}
	}
}
