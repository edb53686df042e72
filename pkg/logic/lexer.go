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
	"strings"
	"unicode"
)

// TokenKind distinguishes the different tokens which can arise within a
// formula string.
type TokenKind uint

// The set of token kinds.  Every alternate notation for a connective lexes to
// the same kind; for example "&&", "∧", "^", "*" and "and" all lex to
// TokenAnd.
const (
	TokenVariable TokenKind = iota
	TokenTrue
	TokenFalse
	TokenNot
	TokenAnd
	TokenOr
	TokenImplies
	TokenIff
	TokenLeftParen
	TokenRightParen
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind TokenKind
	// Text gives the characters this token was scanned from.
	Text string
	// Index gives the rune offset at which this token starts.
	Index uint
}

// SyntaxError signals a malformed formula string, identifying the rune offset
// at which the problem was detected.
type SyntaxError struct {
	Message string
	Index   uint
}

// Error implementation for the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Message, e.Index)
}

// Multi-rune operator symbols, tried longest first so that (e.g.) "<=>" is
// never scanned as "<=" followed by ">".
var symbols = []struct {
	text string
	kind TokenKind
}{
	{"<=>", TokenIff},
	{"<->", TokenIff},
	{"=>", TokenImplies},
	{"->", TokenImplies},
	{"&&", TokenAnd},
	{"||", TokenOr},
	{"!", TokenNot},
	{"¬", TokenNot},
	{"~", TokenNot},
	{"&", TokenAnd},
	{"∧", TokenAnd},
	{"^", TokenAnd},
	{"*", TokenAnd},
	{"|", TokenOr},
	{"∨", TokenOr},
	{"+", TokenOr},
	{"→", TokenImplies},
	{"↔", TokenIff},
	{"(", TokenLeftParen},
	{")", TokenRightParen},
}

// Word forms of the connectives and constants, matched case-insensitively.
var keywords = map[string]TokenKind{
	"not":     TokenNot,
	"and":     TokenAnd,
	"or":      TokenOr,
	"implies": TokenImplies,
	"iff":     TokenIff,
	"true":    TokenTrue,
	"false":   TokenFalse,
}

// Lex splits a formula string into a sequence of tokens, folding all
// alternate notations for a given connective into a single token kind.  An
// unrecognised character yields a syntax error.
func Lex(input string) ([]Token, error) {
	var (
		runes  = []rune(input)
		tokens []Token
		index  uint
	)
	//
	for index < uint(len(runes)) {
		if unicode.IsSpace(runes[index]) {
			index++
			continue
		}
		// Operator symbols first, longest match wins.
		if tok, ok := scanSymbol(runes, index); ok {
			tokens = append(tokens, tok)
			index += uint(len([]rune(tok.Text)))
			//
			continue
		}
		// Otherwise must be an identifier or keyword.
		tok, err := scanWord(runes, index)
		if err != nil {
			return nil, err
		}
		//
		tokens = append(tokens, tok)
		index += uint(len([]rune(tok.Text)))
	}
	//
	return tokens, nil
}

func scanSymbol(runes []rune, index uint) (Token, bool) {
	for _, sym := range symbols {
		text := []rune(sym.text)
		if matchesAt(runes, index, text) {
			return Token{sym.kind, sym.text, index}, true
		}
	}
	//
	return Token{}, false
}

func scanWord(runes []rune, index uint) (Token, error) {
	start := index
	//
	if !unicode.IsLetter(runes[index]) {
		msg := fmt.Sprintf("unexpected character %q", runes[index])
		return Token{}, &SyntaxError{msg, index}
	}
	//
	for index < uint(len(runes)) && identRune(runes[index]) {
		index++
	}
	//
	text := string(runes[start:index])
	// Word operators are matched without case sensitivity, hence both "AND"
	// and "and" denote conjunction.
	if kind, ok := keywords[strings.ToLower(text)]; ok {
		return Token{kind, text, start}, nil
	}
	//
	return Token{TokenVariable, text, start}, nil
}

func identRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func matchesAt(runes []rune, index uint, text []rune) bool {
	if index+uint(len(text)) > uint(len(runes)) {
		return false
	}
	//
	for i, r := range text {
		if runes[index+uint(i)] != r {
			return false
		}
	}
	//
	return true
}
