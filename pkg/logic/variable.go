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
	"hash/fnv"

	"github.com/proofgen/go-proofgen/pkg/util/collection/set"
)

// Variable represents a named propositional variable.  Variables are compared
// by name alone; no alpha-renaming is ever performed.
type Variable struct {
	Name string
}

// Var constructs a propositional variable with the given name.
func Var(name string) Expr {
	return &Variable{name}
}

// Size implementation for the Expr interface.
func (p *Variable) Size() uint {
	return 1
}

// Eval implementation for the Expr interface.
func (p *Variable) Eval(assignment map[string]bool) (bool, error) {
	if val, ok := assignment[p.Name]; ok {
		return val, nil
	}
	//
	return false, fmt.Errorf("variable %q missing from assignment", p.Name)
}

// Vars implementation for the Expr interface.
func (p *Variable) Vars(vars *set.SortedSet[string]) {
	vars.Insert(p.Name)
}

// Equals implementation for the util.Hasher interface.
func (p *Variable) Equals(other Expr) bool {
	if o, ok := other.(*Variable); ok {
		return p.Name == o.Name
	}
	//
	return false
}

// Hash implementation for the util.Hasher interface.
func (p *Variable) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte{tagVariable})
	hash.Write([]byte(p.Name))
	//
	return hash.Sum64()
}

func (p *Variable) String() string {
	return p.Name
}

// Debug implementation for the Expr interface.
func (p *Variable) Debug() string {
	return fmt.Sprintf("VAR(%s)", p.Name)
}
