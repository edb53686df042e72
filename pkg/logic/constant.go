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
	"hash/fnv"

	"github.com/proofgen/go-proofgen/pkg/util/collection/set"
)

// Constant represents one of the two truth values.  Constants are ordinary
// size-one leaves, just like variables.
type Constant struct {
	Value bool
}

// Truth constructs either logical truth or logical falsehood.
func Truth(val bool) Expr {
	return &Constant{val}
}

// Size implementation for the Expr interface.
func (p *Constant) Size() uint {
	return 1
}

// Eval implementation for the Expr interface.
func (p *Constant) Eval(assignment map[string]bool) (bool, error) {
	return p.Value, nil
}

// Vars implementation for the Expr interface.
func (p *Constant) Vars(vars *set.SortedSet[string]) {
	// constants bind no variables
}

// Equals implementation for the util.Hasher interface.
func (p *Constant) Equals(other Expr) bool {
	if o, ok := other.(*Constant); ok {
		return p.Value == o.Value
	}
	//
	return false
}

// Hash implementation for the util.Hasher interface.
func (p *Constant) Hash() uint64 {
	hash := fnv.New64a()
	//
	if p.Value {
		hash.Write([]byte{tagConstant, 1})
	} else {
		hash.Write([]byte{tagConstant, 0})
	}
	//
	return hash.Sum64()
}

func (p *Constant) String() string {
	if p.Value {
		return "true"
	}
	//
	return "false"
}

// Debug implementation for the Expr interface.
func (p *Constant) Debug() string {
	if p.Value {
		return "TRUE"
	}
	//
	return "FALSE"
}
