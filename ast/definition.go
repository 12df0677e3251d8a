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
	"github.com/wdamron/pilcheck/types"
)

// FunctionValueDefinition describes how a symbol is realized. The set of definitions is
// closed: *Mapping, *Query, *Expression and *Array.
type FunctionValueDefinition interface {
	DefinitionName() string
	isDefinition()
}

var (
	_ FunctionValueDefinition = (*Mapping)(nil)
	_ FunctionValueDefinition = (*Query)(nil)
	_ FunctionValueDefinition = (*Expression)(nil)
	_ FunctionValueDefinition = (*Array)(nil)
)

// Mapping from row to value of a fixed column: `col fixed x(i) { i * 2 }`
type Mapping struct {
	Expr Expr
}

// Prover query of a witness column: `col witness x(i) query std::prover::Query::None`
type Query struct {
	Expr Expr
}

// Plain value: `let x = 7`
type Expression struct {
	Expr Expr
}

// Array of values of a fixed column: `col fixed x = [1, 2]*`
type Array struct {
	Elements []ArrayElement
}

// ArrayElement is a sequence of values. A repeated element fills the remaining rows by
// cycling through its pattern.
type ArrayElement struct {
	Pattern  []Expr
	Repeated bool
}

func (*Mapping) DefinitionName() string    { return "Mapping" }
func (*Query) DefinitionName() string      { return "Query" }
func (*Expression) DefinitionName() string { return "Expression" }
func (*Array) DefinitionName() string      { return "Array" }

func (*Mapping) isDefinition()    {}
func (*Query) isDefinition()      {}
func (*Expression) isDefinition() {}
func (*Array) isDefinition()      {}

type SymbolKind uint8

const (
	// Other symbols are plain definitions introduced with `let`.
	Other SymbolKind = iota
	// Column symbols are witness columns (no value) or fixed columns.
	Column
	// Intermediate symbols are columns defined by an algebraic expression.
	Intermediate
)

var symbolKinds = [...]string{
	Other:        "Other",
	Column:       "Column",
	Intermediate: "Intermediate",
}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKinds) {
		return symbolKinds[k]
	}
	return "?"
}

// Symbol is a named top-level definition, already resolved to its fully-qualified name.
type Symbol struct {
	Name string
	Kind SymbolKind
	// TypeScheme is the declared type, or nil when the type is to be inferred.
	TypeScheme *types.TypeScheme
	// Value is nil for witness columns and value-less declarations.
	Value FunctionValueDefinition
}
