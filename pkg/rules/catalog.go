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

// Catalog returns the full catalog of rewrite laws, in the order the search
// engine tries them.  The order is part of the engine's observable behaviour:
// ties between equally short proofs are broken by which rule is tried first.
// Callers must not mutate the returned slice.
func Catalog() []Rule {
	return catalog
}

// Note that deliberately absent from the catalog are the expansion forms of
// idempotence (A into A & A) and identity introduction (A into A & true):
// they apply to every expression whatsoever, which floods the search space
// without ever shortening a proof that the bounded search could find.
var catalog = []Rule{
	CommuteAnd{},
	CommuteOr{},
	CommuteIff{},
	RotateAnd{},
	RotateOr{},
	DoubleNegation{},
	ExcludedMiddle{},
	Contradiction{},
	DeMorganAnd{},
	DeMorganOr{},
	DeMorganAndReverse{},
	DeMorganOrReverse{},
	EliminateImplication{},
	IntroduceImplication{},
	DistributeAnd{},
	DistributeOr{},
	FactorAnd{},
	FactorOr{},
	Contrapositive{},
	Idempotence{},
	ExpandBiconditional{},
	CollapseBiconditional{},
	EliminateIdentity{},
	AnnihilateOr{},
	AnnihilateAnd{},
	AbsorbOr{},
	AbsorbAnd{},
}
