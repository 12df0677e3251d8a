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

package pilcheck

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/types"
)

func mustParseScheme(vars, ty string) *types.TypeScheme {
	ts, err := types.ParseTypeScheme(vars, ty)
	if err != nil {
		panic(err)
	}
	return ts
}

// Builtin symbols. A builtin overrides a program symbol with the same name.
var builtinSchemes = map[string]*types.TypeScheme{
	"std::array::len":     mustParseScheme("T", "T[] -> int"),
	"std::check::panic":   mustParseScheme("", "string -> !"),
	"std::convert::expr":  mustParseScheme("T: FromLiteral", "T -> expr"),
	"std::convert::fe":    mustParseScheme("T: FromLiteral", "T -> fe"),
	"std::convert::int":   mustParseScheme("T: FromLiteral", "T -> int"),
	"std::debug::print":   mustParseScheme("", "string -> constr[]"),
	"std::field::modulus": mustParseScheme("", "-> int"),
	"std::prover::eval":   mustParseScheme("", "expr -> fe"),
}

// QueryEnum is the type of the values of prover queries.
var QueryEnum = &types.EnumDeclaration{
	Name: "std::prover::Query",
	Variants: []types.EnumVariant{
		{Name: "Hint", Fields: []types.Type{types.Fe}},
		{Name: "None"},
	},
}

var builtinEnums = []*types.EnumDeclaration{QueryEnum}

// Query definitions map rows to queries.
var queryType = &types.Function{Params: []types.Type{types.Int}, Value: QueryEnum.Type()}

// BuiltinNames returns the names of the builtin symbols in sorted order.
func BuiltinNames() []string {
	names := maps.Keys(builtinSchemes)
	slices.Sort(names)
	return names
}

// BuiltinScheme returns the type scheme of a builtin symbol.
func BuiltinScheme(name string) (*types.TypeScheme, bool) {
	ts, ok := builtinSchemes[name]
	return ts, ok
}

// BuiltinEnums returns the enums which are declared for every program.
func BuiltinEnums() []*types.EnumDeclaration { return slices.Clone(builtinEnums) }

var binaryOperatorSchemes = [...]*types.TypeScheme{
	ast.Add:          mustParseScheme("T: Add", "T, T -> T"),
	ast.Sub:          mustParseScheme("T: Sub", "T, T -> T"),
	ast.Mul:          mustParseScheme("T: Mul", "T, T -> T"),
	ast.Div:          mustParseScheme("", "int, int -> int"),
	ast.Mod:          mustParseScheme("T: Mod", "T, T -> T"),
	ast.Pow:          mustParseScheme("T: Pow", "T, int -> T"),
	ast.BinaryAnd:    mustParseScheme("", "int, int -> int"),
	ast.BinaryXor:    mustParseScheme("", "int, int -> int"),
	ast.BinaryOr:     mustParseScheme("", "int, int -> int"),
	ast.ShiftLeft:    mustParseScheme("", "int, int -> int"),
	ast.ShiftRight:   mustParseScheme("", "int, int -> int"),
	ast.LogicalAnd:   mustParseScheme("", "bool, bool -> bool"),
	ast.LogicalOr:    mustParseScheme("", "bool, bool -> bool"),
	ast.Less:         mustParseScheme("T: Ord", "T, T -> bool"),
	ast.LessEqual:    mustParseScheme("T: Ord", "T, T -> bool"),
	ast.Equal:        mustParseScheme("T: Eq", "T, T -> bool"),
	ast.NotEqual:     mustParseScheme("T: Eq", "T, T -> bool"),
	ast.GreaterEqual: mustParseScheme("T: Ord", "T, T -> bool"),
	ast.Greater:      mustParseScheme("T: Ord", "T, T -> bool"),
	ast.IdentityOp:   mustParseScheme("", "expr, expr -> constr"),
}

var unaryOperatorSchemes = [...]*types.TypeScheme{
	ast.Minus:      mustParseScheme("T: Neg", "T -> T"),
	ast.LogicalNot: mustParseScheme("", "bool -> bool"),
	ast.Next:       mustParseScheme("", "expr -> expr"),
}

var indexAccessScheme = mustParseScheme("T", "T[], int -> T")

// BinaryOperatorScheme returns the type scheme of a binary operator.
func BinaryOperatorScheme(op ast.BinaryOperator) *types.TypeScheme { return binaryOperatorSchemes[op] }

// UnaryOperatorScheme returns the type scheme of a unary operator.
func UnaryOperatorScheme(op ast.UnaryOperator) *types.TypeScheme { return unaryOperatorSchemes[op] }

// IndexAccessScheme returns the type scheme of `a[i]`.
func IndexAccessScheme() *types.TypeScheme { return indexAccessScheme }
