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

// Negation represents the logical NOT of a single sub-expression.
type Negation struct {
	Inner Expr
}

// Not constructs the logical negation of a given expression.
func Not(inner Expr) Expr {
	return &Negation{inner}
}

// Size implementation for the Expr interface.
func (p *Negation) Size() uint {
	return p.Inner.Size() + 1
}

// Eval implementation for the Expr interface.
func (p *Negation) Eval(assignment map[string]bool) (bool, error) {
	val, err := p.Inner.Eval(assignment)
	if err != nil {
		return false, err
	}
	//
	return !val, nil
}

// Vars implementation for the Expr interface.
func (p *Negation) Vars(vars *set.SortedSet[string]) {
	p.Inner.Vars(vars)
}

// Equals implementation for the util.Hasher interface.
func (p *Negation) Equals(other Expr) bool {
	if o, ok := other.(*Negation); ok {
		return p.Inner.Equals(o.Inner)
	}
	//
	return false
}

// Hash implementation for the util.Hasher interface.
func (p *Negation) Hash() uint64 {
	return hashNode(tagNegation, p.Inner)
}

func (p *Negation) String() string {
	return "!" + subterm(p.Inner)
}

// Debug implementation for the Expr interface.
func (p *Negation) Debug() string {
	return fmt.Sprintf("NOT(%s)", p.Inner.Debug())
}
