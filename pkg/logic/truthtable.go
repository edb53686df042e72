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
	"github.com/proofgen/go-proofgen/pkg/util/collection/set"
	"github.com/proofgen/go-proofgen/pkg/util/termio"
)

// TruthTable records the value of an expression under every assignment of its
// free variables.  Variables are ordered by name ascending; assignments are
// enumerated with false before true and the first variable most significant,
// hence the all-false row always comes first.
type TruthTable struct {
	// Variables gives the column order of each row's values.
	Variables []string
	Rows      []TruthTableRow
}

// TruthTableRow pairs one assignment with the expression's value under it.
type TruthTableRow struct {
	// Values of each variable, in the order given by TruthTable.Variables.
	Values []bool
	Output bool
}

// NewTruthTable evaluates a given expression under every assignment of its
// free variables.  An expression without variables yields a single row.
func NewTruthTable(expr Expr) (*TruthTable, error) {
	var (
		vars = []string(*freeVariables(expr))
		n    = uint(len(vars))
		rows = make([]TruthTableRow, 0, 1<<n)
	)
	//
	for i := uint(0); i < (1 << n); i++ {
		var (
			assignment = make(map[string]bool, n)
			values     = make([]bool, n)
		)
		//
		for j := uint(0); j < n; j++ {
			values[j] = (i>>(n-1-j))&1 == 1
			assignment[vars[j]] = values[j]
		}
		//
		out, err := expr.Eval(assignment)
		if err != nil {
			return nil, err
		}
		//
		rows = append(rows, TruthTableRow{values, out})
	}
	//
	return &TruthTable{vars, rows}, nil
}

// Tabulate renders this truth table, with one column per variable (sorted by
// name), a trailing OUT column, and T/F cells.
func (p *TruthTable) Tabulate() *termio.TablePrinter {
	var (
		width   = uint(len(p.Variables)) + 1
		printer = termio.NewTablePrinter(width, uint(len(p.Rows))+1)
	)
	// Header row
	printer.SetRow(0, append(append([]string{}, p.Variables...), "OUT")...)
	//
	for i, row := range p.Rows {
		cells := make([]string, width)
		//
		for j, val := range row.Values {
			cells[j] = symbolOf(val)
		}
		//
		cells[width-1] = symbolOf(row.Output)
		printer.SetRow(uint(i)+1, cells...)
	}
	//
	return printer
}

// Equivalent determines whether two expressions are logically equivalent,
// that is whether they agree under every assignment of the union of their
// free variables.
func Equivalent(left Expr, right Expr) (bool, error) {
	vars := freeVariables(left)
	right.Vars(vars)
	//
	n := uint(len(*vars))
	//
	for i := uint(0); i < (1 << n); i++ {
		assignment := make(map[string]bool, n)
		//
		for j, name := range *vars {
			assignment[name] = (i>>(n-1-uint(j)))&1 == 1
		}
		//
		lhs, err := left.Eval(assignment)
		if err != nil {
			return false, err
		}
		//
		rhs, err := right.Eval(assignment)
		//
		if err != nil {
			return false, err
		} else if lhs != rhs {
			return false, nil
		}
	}
	//
	return true, nil
}

func freeVariables(expr Expr) *set.SortedSet[string] {
	vars := set.NewSortedSet[string]()
	expr.Vars(vars)
	//
	return vars
}

func symbolOf(val bool) string {
	if val {
		return "T"
	}
	//
	return "F"
}
