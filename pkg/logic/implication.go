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
	"fmt"

	"github.com/proofgen/go-proofgen/pkg/util/collection/set"
)

// Implication represents the material implication of two sub-expressions,
// which is false exactly when the left holds and the right does not.
type Implication struct {
	Left  Expr
	Right Expr
}

// Implies constructs the material implication between two given expressions.
func Implies(left Expr, right Expr) Expr {
	return &Implication{left, right}
}

// Size implementation for the Expr interface.
func (p *Implication) Size() uint {
	return p.Left.Size() + p.Right.Size() + 1
}

// Eval implementation for the Expr interface.
func (p *Implication) Eval(assignment map[string]bool) (bool, error) {
	left, err := p.Left.Eval(assignment)
	if err != nil {
		return false, err
	}
	//
	right, err := p.Right.Eval(assignment)
	//
	return !left || right, err
}

// Vars implementation for the Expr interface.
func (p *Implication) Vars(vars *set.SortedSet[string]) {
	p.Left.Vars(vars)
	p.Right.Vars(vars)
}

// Equals implementation for the util.Hasher interface.
func (p *Implication) Equals(other Expr) bool {
	if o, ok := other.(*Implication); ok {
		return p.Left.Equals(o.Left) && p.Right.Equals(o.Right)
	}
	//
	return false
}

// Hash implementation for the util.Hasher interface.
func (p *Implication) Hash() uint64 {
	return hashNode(tagImplication, p.Left, p.Right)
}

func (p *Implication) String() string {
	return fmt.Sprintf("%s => %s", subterm(p.Left), subterm(p.Right))
}

// Debug implementation for the Expr interface.
func (p *Implication) Debug() string {
	return fmt.Sprintf("IMP(%s, %s)", p.Left.Debug(), p.Right.Debug())
}
