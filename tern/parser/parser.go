// Copyright 2025 The Tern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements a parser for Tern source text, producing a
// tern/ast syntax tree.
package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/errors"
	"ternlang.org/go/tern/scanner"
	"ternlang.org/go/tern/token"
)

// ParseExpr parses the source text of a single expression and returns the
// corresponding ast.Expr. The filename is only used when recording
// positions.
func ParseExpr(filename string, src []byte) (expr ast.Expr, err error) {
	var p parser
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
		}
		err = p.errors.Err()
	}()

	p.init(filename, src)
	expr = p.parseExpr()
	p.expect(token.EOF)
	return expr, p.errors.Err()
}

// A bailout panic aborts parsing after an unrecoverable syntax error.
type bailout struct{}

type parser struct {
	file    *token.File
	scanner scanner.Scanner
	errors  errors.List

	pos token.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal
}

func (p *parser) init(filename string, src []byte) {
	p.file = token.NewFile(filename, len(src))
	eh := func(pos token.Position, msg string) {
		p.errors.AddNewf(pos, "%s", msg)
	}
	p.scanner.Init(p.file, src, eh)
	p.next()
}

// next advances to the next non-comment token.
func (p *parser) next() {
	for {
		p.pos, p.tok, p.lit = p.scanner.Scan()
		if p.tok != token.COMMENT {
			break
		}
	}
}

func (p *parser) errorf(pos token.Pos, format string, args ...interface{}) {
	p.errors.AddNewf(pos.Position(), format, args...)
	panic(bailout{})
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorf(pos, "expected %q, found %q", tok.String(), p.tokenString())
	}
	p.next()
	return pos
}

func (p *parser) tokenString() string {
	if p.tok.IsLiteral() {
		return p.lit
	}
	return p.tok.String()
}

// parseExpr parses a full expression: lambda, let, and if at the outermost
// level, otherwise an operator expression, either followed by an optional
// annotation. An annotation after a lambda, let, or if belongs to the body,
// which the recursion into the body consumes first.
func (p *parser) parseExpr() ast.Expr {
	x := p.parseUnannotated()
	if p.tok == token.COLON {
		p.next()
		return &ast.Annotation{X: x, Type: p.parseType()}
	}
	return x
}

func (p *parser) parseUnannotated() ast.Expr {
	switch p.tok {
	case token.LAMBDA:
		return p.parseLambda()
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	}
	return p.parseBinaryExpr(token.LowestPrec + 1)
}

func (p *parser) parseLambda() ast.Expr {
	lambda := p.expect(token.LAMBDA)
	param := p.parseParamIdent()
	p.expect(token.ARROW)
	return &ast.LambdaExpr{Lambda: lambda, Param: param, Body: p.parseExpr()}
}

func (p *parser) parseLet() ast.Expr {
	var bindings []*ast.LetBinding
	for p.tok == token.LET {
		let := p.expect(token.LET)
		name := p.parseParamIdent()
		var typ ast.Type
		if p.tok == token.COLON {
			p.next()
			typ = p.parseType()
		}
		p.expect(token.BIND)
		bindings = append(bindings, &ast.LetBinding{
			Let:  let,
			Name: name,
			Type: typ,
			Expr: p.parseExpr(),
		})
	}
	in := p.expect(token.IN)
	return &ast.LetExpr{Bindings: bindings, In: in, Body: p.parseExpr()}
}

func (p *parser) parseIf() ast.Expr {
	ifPos := p.expect(token.IF)
	cond := p.parseExpr()
	p.expect(token.THEN)
	then := p.parseExpr()
	p.expect(token.ELSE)
	return &ast.IfExpr{If: ifPos, Cond: cond, Then: then, Else: p.parseExpr()}
}

// parseParamIdent parses a binder name: a plain lowercase identifier with
// no occurrence selector.
func (p *parser) parseParamIdent() *ast.Ident {
	pos, name := p.pos, p.lit
	p.expect(token.IDENT)
	if isUpper(name) || strings.ContainsRune(name, '/') {
		p.errorf(pos, "cannot bind name %q", name)
	}
	return &ast.Ident{NamePos: pos, Name: name}
}

func (p *parser) parseBinaryExpr(prec1 int) ast.Expr {
	x := p.parseApplyExpr()
	for {
		prec := token.Precedence(p.tok)
		if prec < prec1 {
			return x
		}
		op := p.tok
		pos := p.pos
		p.next()
		y := p.parseBinaryExpr(prec + 1)
		x = &ast.BinaryExpr{X: x, OpPos: pos, Op: op, Y: y}
	}
}

// parseApplyExpr parses a juxtaposition chain f a b, which associates to
// the left.
func (p *parser) parseApplyExpr() ast.Expr {
	x := p.parseOperand()
	for p.startsArgument() {
		x = &ast.CallExpr{Fun: x, Arg: p.parsePrimary()}
	}
	return x
}

// startsArgument reports whether the current token can begin an application
// argument. Lambdas, lets, conditionals, and merge require parentheses in
// argument position.
func (p *parser) startsArgument() bool {
	switch p.tok {
	case token.IDENT, token.NATURAL, token.INTEGER, token.DOUBLE, token.STRING,
		token.TRUE, token.FALSE, token.NULL,
		token.LPAREN, token.LBRACK, token.LBRACE, token.QUEST:
		return true
	}
	return false
}

// parseOperand parses the head of an application chain, which additionally
// admits merge.
func (p *parser) parseOperand() ast.Expr {
	if p.tok == token.MERGE {
		merge := p.expect(token.MERGE)
		return &ast.MergeExpr{Merge: merge, X: p.parsePrimary()}
	}
	return p.parsePrimary()
}

// parsePrimary parses an atomic expression followed by any number of field
// selectors.
func (p *parser) parsePrimary() ast.Expr {
	x := p.parseAtom()
	for p.tok == token.PERIOD {
		p.next()
		pos, name := p.pos, p.lit
		p.expect(token.IDENT)
		x = &ast.SelectorExpr{X: x, Sel: &ast.Ident{NamePos: pos, Name: name}}
	}
	return x
}

func (p *parser) parseAtom() ast.Expr {
	switch p.tok {
	case token.IDENT:
		return p.parseIdent()

	case token.NATURAL, token.INTEGER, token.DOUBLE, token.STRING:
		lit := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
		return lit

	case token.TRUE, token.FALSE, token.NULL:
		lit := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.tok.String()}
		p.next()
		return lit

	case token.LPAREN:
		lparen := p.expect(token.LPAREN)
		x := p.parseExpr()
		rparen := p.expect(token.RPAREN)
		return &ast.ParenExpr{Lparen: lparen, X: x, Rparen: rparen}

	case token.LBRACK:
		return p.parseList()

	case token.LBRACE:
		return p.parseRecord()

	case token.QUEST:
		quest := p.expect(token.QUEST)
		pos, name := p.pos, p.lit
		p.expect(token.IDENT)
		return &ast.ImportExpr{Quest: quest, Name: &ast.Ident{NamePos: pos, Name: name}}
	}
	p.errorf(p.pos, "expected expression, found %q", p.tokenString())
	return nil
}

// parseIdent classifies an identifier occurrence: slash-named builtin,
// uppercase alternative, or variable with an optional @n selector.
func (p *parser) parseIdent() ast.Expr {
	pos, name := p.pos, p.lit
	p.expect(token.IDENT)
	switch {
	case strings.ContainsRune(name, '/'):
		if !knownBuiltin(name) {
			p.errorf(pos, "unknown builtin %q", name)
		}
		return &ast.Builtin{NamePos: pos, Name: name}
	case isUpper(name):
		return &ast.Alternative{NamePos: pos, Name: name}
	}
	ident := &ast.Ident{NamePos: pos, Name: name}
	if p.tok == token.AT {
		ident.At = p.pos
		p.next()
		selPos, sel := p.pos, p.lit
		p.expect(token.NATURAL)
		n, err := strconv.Atoi(sel)
		if err != nil {
			p.errorf(selPos, "invalid occurrence selector %q", sel)
		}
		ident.Selector = n
	}
	return ident
}

func (p *parser) parseList() ast.Expr {
	lbrack := p.expect(token.LBRACK)
	var elts []ast.Expr
	for p.tok != token.RBRACK && p.tok != token.EOF {
		elts = append(elts, p.parseExpr())
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	rbrack := p.expect(token.RBRACK)
	return &ast.ListLit{Lbrack: lbrack, Elts: elts, Rbrack: rbrack}
}

func (p *parser) parseRecord() ast.Expr {
	lbrace := p.expect(token.LBRACE)
	var fields []*ast.FieldLit
	for p.tok != token.RBRACE && p.tok != token.EOF {
		pos, name := p.pos, p.lit
		p.expect(token.IDENT)
		p.expect(token.COLON)
		fields = append(fields, &ast.FieldLit{
			Label: &ast.Ident{NamePos: pos, Name: name},
			Value: p.parseExpr(),
		})
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.RecordLit{Lbrace: lbrace, Fields: fields, Rbrace: rbrace}
}

// Types

func (p *parser) parseType() ast.Type {
	t := p.parseTypeOperand()
	if p.tok == token.ARROW {
		arrow := p.pos
		p.next()
		return &ast.FuncType{Arg: t, Arrow: arrow, Ret: p.parseType()}
	}
	return t
}

func (p *parser) parseTypeOperand() ast.Type {
	switch p.tok {
	case token.IDENT:
		pos, name := p.pos, p.lit
		p.next()
		if name == "List" {
			return &ast.ListType{List: pos, Elem: p.parseTypeOperand()}
		}
		return &ast.TypeIdent{NamePos: pos, Name: name}

	case token.LPAREN:
		p.next()
		t := p.parseType()
		p.expect(token.RPAREN)
		return t

	case token.LBRACE:
		lbrace := p.expect(token.LBRACE)
		var fields []*ast.TypeField
		for p.tok != token.RBRACE && p.tok != token.EOF {
			pos, name := p.pos, p.lit
			p.expect(token.IDENT)
			p.expect(token.COLON)
			fields = append(fields, &ast.TypeField{
				Name: &ast.Ident{NamePos: pos, Name: name},
				Type: p.parseType(),
			})
			if p.tok != token.COMMA {
				break
			}
			p.next()
		}
		rbrace := p.expect(token.RBRACE)
		return &ast.RecordType{Lbrace: lbrace, Fields: fields, Rbrace: rbrace}

	case token.LSS:
		lss := p.expect(token.LSS)
		var alts []*ast.AltType
		for p.tok != token.GTR && p.tok != token.EOF {
			pos, name := p.pos, p.lit
			p.expect(token.IDENT)
			if !isUpper(name) {
				p.errorf(pos, "alternative name %q must be capitalized", name)
			}
			alt := &ast.AltType{Name: &ast.Alternative{NamePos: pos, Name: name}}
			if p.tok == token.COLON {
				p.next()
				alt.Payload = p.parseType()
			}
			alts = append(alts, alt)
			if p.tok != token.BAR {
				break
			}
			p.next()
		}
		gtr := p.expect(token.GTR)
		return &ast.UnionType{Lss: lss, Alts: alts, Gtr: gtr}
	}
	p.errorf(p.pos, "expected type, found %q", p.tokenString())
	return nil
}

func isUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func knownBuiltin(name string) bool {
	switch name {
	case "Double/show", "List/fold", "List/length", "List/map",
		"Integer/even", "Integer/odd", "Natural/fold":
		return true
	}
	return false
}
