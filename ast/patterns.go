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

// Pattern is the base for all patterns of match arms and lambda parameters.
type Pattern interface {
	PatternName() string
	isPattern()
}

var (
	_ Pattern = (*CatchAll)(nil)
	_ Pattern = (*NumberPattern)(nil)
	_ Pattern = (*StringPattern)(nil)
	_ Pattern = (*VariablePattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
	_ Pattern = (*ArrayPattern)(nil)
	_ Pattern = (*EnumPattern)(nil)
)

// `_`
type CatchAll struct{}

// `7`
type NumberPattern struct {
	Value *big.Int
	// Type is assigned after type-checking.
	Type types.Type
}

// `"abc"`
type StringPattern struct {
	Value string
}

// `x`
type VariablePattern struct {
	Name string
}

// `(a, _)`
type TuplePattern struct {
	Items []Pattern
}

// `[a, b]`
type ArrayPattern struct {
	Items []Pattern
}

// Enum variant pattern: `X::B(n)`, or `X::A` when Fields is nil.
type EnumPattern struct {
	Name   string
	Fields []Pattern
}

func (*CatchAll) PatternName() string        { return "CatchAll" }
func (*NumberPattern) PatternName() string   { return "NumberPattern" }
func (*StringPattern) PatternName() string   { return "StringPattern" }
func (*VariablePattern) PatternName() string { return "VariablePattern" }
func (*TuplePattern) PatternName() string    { return "TuplePattern" }
func (*ArrayPattern) PatternName() string    { return "ArrayPattern" }
func (*EnumPattern) PatternName() string     { return "EnumPattern" }

func (*CatchAll) isPattern()        {}
func (*NumberPattern) isPattern()   {}
func (*StringPattern) isPattern()   {}
func (*VariablePattern) isPattern() {}
func (*TuplePattern) isPattern()    {}
func (*ArrayPattern) isPattern()    {}
func (*EnumPattern) isPattern()     {}

// WalkPattern calls f for p and every sub-pattern of p, parents first.
func WalkPattern(p Pattern, f func(Pattern)) {
	f(p)
	switch p := p.(type) {
	case *TuplePattern:
		for _, item := range p.Items {
			WalkPattern(item, f)
		}
	case *ArrayPattern:
		for _, item := range p.Items {
			WalkPattern(item, f)
		}
	case *EnumPattern:
		for _, field := range p.Fields {
			WalkPattern(field, f)
		}
	}
}
