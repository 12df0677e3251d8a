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
	"math/big"

	"github.com/wdamron/pilcheck/types"
)

// Expr is the base for all expressions. The set of expressions is closed.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*Reference)(nil)
	_ Expr = (*LocalVar)(nil)
	_ Expr = (*Number)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*ArrayLiteral)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*FunctionCall)(nil)
	_ Expr = (*IndexAccess)(nil)
	_ Expr = (*BinaryOp)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Match)(nil)
)

// Reference to a global symbol or an enum variant, by its fully-qualified name: `std::array::len`
type Reference struct {
	Name string
	// TypeArgs holds the types the referenced symbol's type-variables were instantiated with.
	// It is nil for references to symbols without type-variables. Type arguments are
	// assigned after type-checking.
	TypeArgs []types.Type
}

// "Reference"
func (e *Reference) ExprName() string { return "Reference" }

// Reference to a lambda parameter or a variable bound by a pattern: `i`
type LocalVar struct {
	Name string
}

// "LocalVar"
func (e *LocalVar) ExprName() string { return "LocalVar" }

// Number literal: `7`
type Number struct {
	Value *big.Int
	// Type is the type the literal is used at. It is assigned after type-checking.
	Type types.Type
}

// "Number"
func (e *Number) ExprName() string { return "Number" }

// String literal: `"abc"`
type String struct {
	Value string
}

// "String"
func (e *String) ExprName() string { return "String" }

// Tuple: `(1, "a")`
type Tuple struct {
	Items []Expr
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// Array literal: `[1, 2]`
type ArrayLiteral struct {
	Items []Expr
}

// "ArrayLiteral"
func (e *ArrayLiteral) ExprName() string { return "ArrayLiteral" }

// Lambda: `|i, (a, b)| i + a`
type Lambda struct {
	Params []Pattern
	Body   Expr
}

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }

// Application: `f(x, y)`
type FunctionCall struct {
	Function Expr
	Args     []Expr
}

// "FunctionCall"
func (e *FunctionCall) ExprName() string { return "FunctionCall" }

// Array element access: `x[0]`
type IndexAccess struct {
	Array Expr
	Index Expr
}

// "IndexAccess"
func (e *IndexAccess) ExprName() string { return "IndexAccess" }

// Binary operation: `a + b`
type BinaryOp struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

// "BinaryOp"
func (e *BinaryOp) ExprName() string { return "BinaryOp" }

// Unary operation: `-a`, `!c` or `x'`
type UnaryOp struct {
	Op   UnaryOperator
	Expr Expr
}

// "UnaryOp"
func (e *UnaryOp) ExprName() string { return "UnaryOp" }

// Conditional: `if c { a } else { b }`
type If struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Pattern matching: `match x { 0 => a, _ => b }`
type Match struct {
	Scrutinee Expr
	Arms      []MatchArm
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

// Arm of a match expression. Arms are tried in order.
type MatchArm struct {
	Pattern Pattern
	Value   Expr
}

func (*Reference) isExpr()    {}
func (*LocalVar) isExpr()     {}
func (*Number) isExpr()       {}
func (*String) isExpr()       {}
func (*Tuple) isExpr()        {}
func (*ArrayLiteral) isExpr() {}
func (*Lambda) isExpr()       {}
func (*FunctionCall) isExpr() {}
func (*IndexAccess) isExpr()  {}
func (*BinaryOp) isExpr()     {}
func (*UnaryOp) isExpr()      {}
func (*If) isExpr()           {}
func (*Match) isExpr()        {}

type BinaryOperator uint8

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Pow
	BinaryAnd
	BinaryXor
	BinaryOr
	ShiftLeft
	ShiftRight
	LogicalAnd
	LogicalOr
	Less
	LessEqual
	Equal
	NotEqual
	GreaterEqual
	Greater
	// IdentityOp is the polynomial identity operator `=`.
	IdentityOp
)

var binaryOperators = [...]string{
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	Mod:          "%",
	Pow:          "**",
	BinaryAnd:    "&",
	BinaryXor:    "^",
	BinaryOr:     "|",
	ShiftLeft:    "<<",
	ShiftRight:   ">>",
	LogicalAnd:   "&&",
	LogicalOr:    "||",
	Less:         "<",
	LessEqual:    "<=",
	Equal:        "==",
	NotEqual:     "!=",
	GreaterEqual: ">=",
	Greater:      ">",
	IdentityOp:   "=",
}

func (op BinaryOperator) String() string {
	if int(op) < len(binaryOperators) {
		return binaryOperators[op]
	}
	return "?"
}

type UnaryOperator uint8

const (
	Minus UnaryOperator = iota
	LogicalNot
	// Next is the postfix operator `'`, referring to the next row of a column.
	Next
)

var unaryOperators = [...]string{
	Minus:      "-",
	LogicalNot: "!",
	Next:       "'",
}

func (op UnaryOperator) String() string {
	if int(op) < len(unaryOperators) {
		return unaryOperators[op]
	}
	return "?"
}

// IsPostfix checks whether the operator is written after its operand.
func (op UnaryOperator) IsPostfix() bool { return op == Next }
