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
)

// Parse turns a formula string into an expression tree, honouring the
// precedence order ! > & > | > => > <=>, with negation binding tighter than
// every binary connective.  Chained occurrences of the same binary connective
// associate to the left, hence "a & b & c" parses as "(a & b) & c".
// Malformed input (empty string, unbalanced parentheses, missing operand,
// trailing tokens) yields a SyntaxError.
func Parse(input string) (Expr, error) {
	tokens, err := Lex(input)
	//
	if err != nil {
		return nil, err
	} else if len(tokens) == 0 {
		return nil, &SyntaxError{"empty expression", 0}
	}
	//
	parser := &parser{tokens, 0, uint(len([]rune(input)))}
	//
	expr, err := parser.parseBiconditional()
	if err != nil {
		return nil, err
	}
	// Whole input must be consumed.
	if tok, ok := parser.peek(); ok {
		msg := fmt.Sprintf("unexpected %q", tok.Text)
		return nil, &SyntaxError{msg, tok.Index}
	}
	//
	return expr, nil
}

type parser struct {
	tokens []Token
	index  uint
	// end gives the rune offset just past the input, used when reporting an
	// unexpected end of expression.
	end uint
}

func (p *parser) peek() (Token, bool) {
	if p.index < uint(len(p.tokens)) {
		return p.tokens[p.index], true
	}
	//
	return Token{}, false
}

// match consumes the next token provided it has the given kind.
func (p *parser) match(kind TokenKind) (Token, bool) {
	if tok, ok := p.peek(); ok && tok.Kind == kind {
		p.index++
		return tok, true
	}
	//
	return Token{}, false
}

// Binary connectives are parsed by a cascade of precedence levels, each of
// which folds chained operators to the left.

func (p *parser) parseBiconditional() (Expr, error) {
	return p.parseBinary(TokenIff, Iff, p.parseImplication)
}

func (p *parser) parseImplication() (Expr, error) {
	return p.parseBinary(TokenImplies, Implies, p.parseDisjunction)
}

func (p *parser) parseDisjunction() (Expr, error) {
	return p.parseBinary(TokenOr, Or, p.parseConjunction)
}

func (p *parser) parseConjunction() (Expr, error) {
	return p.parseBinary(TokenAnd, And, p.parseUnary)
}

func (p *parser) parseBinary(kind TokenKind, construct func(Expr, Expr) Expr,
	operand func() (Expr, error)) (Expr, error) {
	//
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	//
	for {
		if _, ok := p.match(kind); !ok {
			return expr, nil
		}
		//
		right, err := operand()
		if err != nil {
			return nil, err
		}
		//
		expr = construct(expr, right)
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if _, ok := p.match(TokenNot); ok {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return Not(inner), nil
	}
	//
	return p.parseAtom()
}

func (p *parser) parseAtom() (Expr, error) {
	tok, ok := p.peek()
	//
	if !ok {
		return nil, &SyntaxError{"unexpected end of expression", p.end}
	}
	//
	switch tok.Kind {
	case TokenVariable:
		p.index++
		return Var(tok.Text), nil
	case TokenTrue:
		p.index++
		return Truth(true), nil
	case TokenFalse:
		p.index++
		return Truth(false), nil
	case TokenLeftParen:
		p.index++
		//
		expr, err := p.parseBiconditional()
		if err != nil {
			return nil, err
		}
		//
		if _, ok := p.match(TokenRightParen); !ok {
			return nil, &SyntaxError{"unbalanced parentheses", tok.Index}
		}
		//
		return expr, nil
	default:
		msg := fmt.Sprintf("missing operand before %q", tok.Text)
		return nil, &SyntaxError{msg, tok.Index}
	}
}
