package cmd

import (
	"bytes"
	"testing"

	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SyntaxErrorHighlight(t *testing.T) {
	assert.Equal(t, "error: unexpected \")\" (at offset 5)\na & b)\n     ^\n",
		highlight(t, "a & b)"))
}

func Test_SyntaxErrorHighlight_NonAscii(t *testing.T) {
	// the caret indent counts runes, not bytes, so multi-byte characters
	// before the error must not push it right
	assert.Equal(t, "error: unexpected \")\" (at offset 2)\nαβ)\n  ^\n",
		highlight(t, "αβ)"))
}

func Test_SyntaxErrorHighlight_AtEnd(t *testing.T) {
	assert.Equal(t, "error: unexpected end of expression (at offset 4)\n¬p &\n    ^\n",
		highlight(t, "¬p &"))
}

func highlight(t *testing.T, input string) string {
	var buf bytes.Buffer
	//
	_, err := logic.Parse(input)
	require.Error(t, err)
	//
	syntax, ok := err.(*logic.SyntaxError)
	require.True(t, ok)
	//
	fprintSyntaxError(&buf, input, syntax)
	//
	return buf.String()
}
