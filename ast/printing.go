// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p)
	return sb.String()
}

// DefinitionString renders the definition of a named symbol: `x = (|i| i)`
// Compound values are parenthesized.
func DefinitionString(name string, def FunctionValueDefinition) string {
	var sb strings.Builder
	sb.WriteString(name)
	switch def := def.(type) {
	case *Mapping:
		sb.WriteString(" = ")
		exprString(&sb, true, def.Expr)
	case *Query:
		sb.WriteString(" query ")
		exprString(&sb, true, def.Expr)
	case *Expression:
		sb.WriteString(" = ")
		exprString(&sb, true, def.Expr)
	case *Array:
		sb.WriteString(" = ")
		for i, el := range def.Elements {
			if i > 0 {
				sb.WriteString(" + ")
			}
			sb.WriteByte('[')
			writeExprs(&sb, el.Pattern)
			sb.WriteByte(']')
			if el.Repeated {
				sb.WriteByte('*')
			}
		}
	}
	return sb.String()
}

// IdentityString returns a string representation of an identity.
func IdentityString(id *Identity) string {
	var sb strings.Builder
	if id.Kind == Polynomial {
		exprString(&sb, false, id.Left.Selector)
		return sb.String()
	}
	selectedString(&sb, &id.Left)
	switch id.Kind {
	case Plookup:
		sb.WriteString(" in ")
	case Permutation:
		sb.WriteString(" is ")
	case Connect:
		sb.WriteString(" connect ")
	}
	selectedString(&sb, &id.Right)
	return sb.String()
}

func selectedString(sb *strings.Builder, side *SelectedExpressions) {
	if side.Selector != nil {
		exprString(sb, true, side.Selector)
		sb.WriteString(" $ ")
	}
	sb.WriteString("{ ")
	writeExprs(sb, side.Expressions)
	sb.WriteString(" }")
}

func writeExprs(sb *strings.Builder, es []Expr) {
	for i, e := range es {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, false, e)
	}
}

// Compound expressions are parenthesized when simple is set, e.g. for operands of operators.
func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch e := e.(type) {
	case *Reference:
		sb.WriteString(e.Name)

	case *LocalVar:
		sb.WriteString(e.Name)

	case *Number:
		if e.Value == nil {
			sb.WriteByte('0')
		} else {
			sb.WriteString(e.Value.String())
		}

	case *String:
		sb.WriteString(strconv.Quote(e.Value))

	case *Tuple:
		sb.WriteByte('(')
		writeExprs(sb, e.Items)
		if len(e.Items) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')

	case *ArrayLiteral:
		sb.WriteByte('[')
		writeExprs(sb, e.Items)
		sb.WriteByte(']')

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('|')
		for i, p := range e.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, p)
		}
		sb.WriteString("| ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *FunctionCall:
		exprString(sb, true, e.Function)
		sb.WriteByte('(')
		writeExprs(sb, e.Args)
		sb.WriteByte(')')

	case *IndexAccess:
		exprString(sb, true, e.Array)
		sb.WriteByte('[')
		exprString(sb, false, e.Index)
		sb.WriteByte(']')

	case *BinaryOp:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		exprString(sb, true, e.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *UnaryOp:
		if e.Op.IsPostfix() {
			exprString(sb, true, e.Expr)
			sb.WriteString(e.Op.String())
		} else {
			sb.WriteString(e.Op.String())
			exprString(sb, true, e.Expr)
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, e.Condition)
		sb.WriteString(" { ")
		exprString(sb, false, e.Then)
		sb.WriteString(" } else { ")
		exprString(sb, false, e.Else)
		sb.WriteString(" }")
		if simple {
			sb.WriteByte(')')
		}

	case *Match:
		sb.WriteString("match ")
		exprString(sb, false, e.Scrutinee)
		sb.WriteString(" { ")
		for i, arm := range e.Arms {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, arm.Pattern)
			sb.WriteString(" => ")
			exprString(sb, false, arm.Value)
		}
		sb.WriteString(" }")

	case nil:
		sb.WriteString("<nil>")
	}
}

func patternString(sb *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *CatchAll:
		sb.WriteByte('_')

	case *NumberPattern:
		if p.Value == nil {
			sb.WriteByte('0')
		} else {
			sb.WriteString(p.Value.String())
		}

	case *StringPattern:
		sb.WriteString(strconv.Quote(p.Value))

	case *VariablePattern:
		sb.WriteString(p.Name)

	case *TuplePattern:
		sb.WriteByte('(')
		writePatterns(sb, p.Items)
		sb.WriteByte(')')

	case *ArrayPattern:
		sb.WriteByte('[')
		writePatterns(sb, p.Items)
		sb.WriteByte(']')

	case *EnumPattern:
		sb.WriteString(p.Name)
		if p.Fields != nil {
			sb.WriteByte('(')
			writePatterns(sb, p.Fields)
			sb.WriteByte(')')
		}
	}
}

func writePatterns(sb *strings.Builder, ps []Pattern) {
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		patternString(sb, p)
	}
}
