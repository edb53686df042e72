package logic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TruthTable_RowOrder(t *testing.T) {
	table, err := NewTruthTable(And(Var("a"), Not(Var("b"))))
	require.NoError(t, err)
	//
	assert.Equal(t, []string{"a", "b"}, table.Variables)
	require.Len(t, table.Rows, 4)
	// Assignments enumerate false before true, first variable most
	// significant.
	assert.Equal(t, []bool{false, false}, table.Rows[0].Values)
	assert.Equal(t, []bool{false, true}, table.Rows[1].Values)
	assert.Equal(t, []bool{true, false}, table.Rows[2].Values)
	assert.Equal(t, []bool{true, true}, table.Rows[3].Values)
	// a & !b only holds on the (true,false) row.
	assert.Equal(t, []bool{false, false, true, false}, outputs(table))
}

func Test_TruthTable_VariablesSorted(t *testing.T) {
	table, err := NewTruthTable(Or(Var("z"), And(Var("a"), Var("z"))))
	require.NoError(t, err)
	// Duplicates collapse, names sort ascending.
	assert.Equal(t, []string{"a", "z"}, table.Variables)
	assert.Len(t, table.Rows, 4)
}

func Test_TruthTable_NoVariables(t *testing.T) {
	table, err := NewTruthTable(Or(Truth(false), Truth(true)))
	require.NoError(t, err)
	//
	assert.Empty(t, table.Variables)
	require.Len(t, table.Rows, 1)
	assert.True(t, table.Rows[0].Output)
}

func Test_TruthTable_Tabulate(t *testing.T) {
	table, err := NewTruthTable(Implies(Var("p"), Var("q")))
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	//
	table.Tabulate().Fprint(&buf)
	//
	expected := "p q OUT\n" +
		"F F   T\n" +
		"F T   T\n" +
		"T F   F\n" +
		"T T   T\n"
	assert.Equal(t, expected, buf.String())
}

func Test_Equivalent_ImplicationElimination(t *testing.T) {
	testEquivalent(t, Implies(Var("a"), Var("b")), Or(Not(Var("a")), Var("b")), true)
}

func Test_Equivalent_DeMorgan(t *testing.T) {
	testEquivalent(t, Not(And(Var("a"), Var("b"))), Or(Not(Var("a")), Not(Var("b"))), true)
}

func Test_Equivalent_DisjointVariables(t *testing.T) {
	// b | !b is vacuous, hence both sides depend only on a.
	testEquivalent(t, Var("a"), And(Var("a"), Or(Var("b"), Not(Var("b")))), true)
}

func Test_Equivalent_Not(t *testing.T) {
	testEquivalent(t, Var("a"), Var("b"), false)
	testEquivalent(t, Implies(Var("a"), Var("b")), Implies(Var("b"), Var("a")), false)
}

func testEquivalent(t *testing.T, left Expr, right Expr, expected bool) {
	equivalent, err := Equivalent(left, right)
	//
	require.NoError(t, err)
	assert.Equal(t, expected, equivalent, "%s vs %s", left, right)
}

func outputs(table *TruthTable) []bool {
	outs := make([]bool, len(table.Rows))
	//
	for i, row := range table.Rows {
		outs[i] = row.Output
	}
	//
	return outs
}
