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

package construct

import (
	"math/big"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/types"
)

// Types

// Parse a type: `int, (int -> T) -> T`. It panics if the type is invalid.
func T(src string) types.Type {
	t, err := types.ParseType(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse a type scheme: `<T: Add> T, T -> T` is Scheme("T: Add", "T, T -> T"). It panics if the
// scheme is invalid.
func Scheme(vars, ty string) *types.TypeScheme {
	ts, err := types.ParseTypeScheme(vars, ty)
	if err != nil {
		panic(err)
	}
	return ts
}

// Enum declaration: `enum X { A, B(int) }`
func Enum(name string, variants ...types.EnumVariant) *types.EnumDeclaration {
	return &types.EnumDeclaration{Name: name, Variants: variants}
}

// Enum variant without fields: `A`
func Variant(name string) types.EnumVariant {
	return types.EnumVariant{Name: name}
}

// Enum variant with fields: `B(int)`
func VariantFields(name string, fields ...types.Type) types.EnumVariant {
	if fields == nil {
		fields = []types.Type{}
	}
	return types.EnumVariant{Name: name, Fields: fields}
}

// Expressions:

// Reference to a symbol or enum variant: `std::array::len`
func Ref(name string) *ast.Reference {
	return &ast.Reference{Name: name}
}

// Lambda parameter or pattern variable: `i`
func Local(name string) *ast.LocalVar {
	return &ast.LocalVar{Name: name}
}

// Number literal: `7`
func Num(v int64) *ast.Number {
	return &ast.Number{Value: big.NewInt(v)}
}

// Number literal from its decimal or hexadecimal (`0x`) representation. It panics if the literal
// is invalid.
func NumString(v string) *ast.Number {
	n, ok := new(big.Int).SetString(v, 0)
	if !ok {
		panic("invalid number literal " + v)
	}
	return &ast.Number{Value: n}
}

// String literal: `"abc"`
func Str(v string) *ast.String {
	return &ast.String{Value: v}
}

// Tuple: `(a, b)`
func Tuple(items ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Items: items}
}

// Array literal: `[a, b]`
func Array(items ...ast.Expr) *ast.ArrayLiteral {
	return &ast.ArrayLiteral{Items: items}
}

// Lambda with variable parameters: `|a, b| body`
func Lambda(params []string, body ast.Expr) *ast.Lambda {
	ps := make([]ast.Pattern, len(params))
	for i, name := range params {
		ps[i] = PVar(name)
	}
	return &ast.Lambda{Params: ps, Body: body}
}

// Lambda with a single variable parameter: `|i| body`
func Lambda1(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: []ast.Pattern{PVar(param)}, Body: body}
}

// Lambda with pattern parameters: `|(a, _)| body`
func LambdaP(params []ast.Pattern, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: params, Body: body}
}

// Function call: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.FunctionCall {
	return &ast.FunctionCall{Function: f, Args: args}
}

// Index access: `a[i]`
func Index(array, index ast.Expr) *ast.IndexAccess {
	return &ast.IndexAccess{Array: array, Index: index}
}

// Binary operation: `a + b`
func Bin(left ast.Expr, op ast.BinaryOperator, right ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{Left: left, Op: op, Right: right}
}

// Unary operation: `-a`, `!a` or `a'`
func Unary(op ast.UnaryOperator, e ast.Expr) *ast.UnaryOp {
	return &ast.UnaryOp{Op: op, Expr: e}
}

// Conditional: `if c { a } else { b }`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Condition: cond, Then: then, Else: els}
}

// Match expression:
//
//  match e {
//      0 => a,
//      X::B(n) => b,
//      _ => c
//  }
func Match(scrutinee ast.Expr, arms ...ast.MatchArm) *ast.Match {
	return &ast.Match{Scrutinee: scrutinee, Arms: arms}
}

// Match arm: `X::B(n) => b`
func Arm(p ast.Pattern, value ast.Expr) ast.MatchArm {
	return ast.MatchArm{Pattern: p, Value: value}
}

// Patterns:

// `_`
func PCatchAll() *ast.CatchAll { return &ast.CatchAll{} }

// `7`
func PNum(v int64) *ast.NumberPattern { return &ast.NumberPattern{Value: big.NewInt(v)} }

// `"abc"`
func PStr(v string) *ast.StringPattern { return &ast.StringPattern{Value: v} }

// `x`
func PVar(name string) *ast.VariablePattern { return &ast.VariablePattern{Name: name} }

// `(a, b)`
func PTuple(items ...ast.Pattern) *ast.TuplePattern { return &ast.TuplePattern{Items: items} }

// `[a, b]`
func PArray(items ...ast.Pattern) *ast.ArrayPattern { return &ast.ArrayPattern{Items: items} }

// Enum variant pattern without fields: `X::A`
func PEnum(name string) *ast.EnumPattern { return &ast.EnumPattern{Name: name} }

// Enum variant pattern with fields: `X::B(n)`
func PEnumFields(name string, fields ...ast.Pattern) *ast.EnumPattern {
	if fields == nil {
		fields = []ast.Pattern{}
	}
	return &ast.EnumPattern{Name: name, Fields: fields}
}

// Symbols:

// Symbol with inferred type: `let x = value`
func Let(name string, value ast.Expr) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Other, Value: &ast.Expression{Expr: value}}
}

// Symbol with declared type: `let<T: Add> x: T, T -> T = value`
func LetTyped(name string, ts *types.TypeScheme, value ast.Expr) *ast.Symbol {
	sym := &ast.Symbol{Name: name, Kind: ast.Other, TypeScheme: ts}
	if value != nil {
		sym.Value = &ast.Expression{Expr: value}
	}
	return sym
}

// Witness column: `col witness x` or `let x: col[3]`
func Witness(name string, ty string) *ast.Symbol {
	sym := &ast.Symbol{Name: name, Kind: ast.Column}
	if ty != "" {
		sym.TypeScheme = types.Mono(T(ty))
	}
	return sym
}

// Fixed column defined by a function of the row: `col fixed x(i) { i * 2 }`
func Fixed(name string, value ast.Expr) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Column, Value: &ast.Mapping{Expr: value}}
}

// Column declared with `let x: col = value`
func LetColumn(name string, value ast.Expr) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Column, TypeScheme: types.Mono(types.Col), Value: &ast.Expression{Expr: value}}
}

// Fixed column defined by an array of values: `col fixed x = [1, 2] + [0]*`
func FixedArray(name string, elements ...ast.ArrayElement) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Column, Value: &ast.Array{Elements: elements}}
}

// Array element: `[1, 2]`
func Elements(values ...ast.Expr) ast.ArrayElement {
	return ast.ArrayElement{Pattern: values}
}

// Repeated array element: `[1, 2]*`
func Repeated(values ...ast.Expr) ast.ArrayElement {
	return ast.ArrayElement{Pattern: values, Repeated: true}
}

// Witness column with a prover query: `col witness x(i) query q`
func Query(name string, value ast.Expr) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Column, Value: &ast.Query{Expr: value}}
}

// Intermediate column: `col x = a * b`
func Intermediate(name string, value ast.Expr) *ast.Symbol {
	return &ast.Symbol{Name: name, Kind: ast.Intermediate, Value: &ast.Expression{Expr: value}}
}

// Identities:

// Polynomial identity: `a * b = c` is Poly(Bin(Bin(a, Mul, b), Sub, c))
func Poly(e ast.Expr) *ast.Identity {
	return ast.NewPolynomialIdentity(e)
}

// Lookup: `{ a } in { b }`
func Plookup(left, right []ast.Expr) *ast.Identity {
	return &ast.Identity{
		Kind:  ast.Plookup,
		Left:  ast.SelectedExpressions{Expressions: left},
		Right: ast.SelectedExpressions{Expressions: right},
	}
}

// Permutation: `{ a } is { b }`
func Permutation(left, right []ast.Expr) *ast.Identity {
	return &ast.Identity{
		Kind:  ast.Permutation,
		Left:  ast.SelectedExpressions{Expressions: left},
		Right: ast.SelectedExpressions{Expressions: right},
	}
}

// Expression list: `a, b`
func Exprs(es ...ast.Expr) []ast.Expr { return es }
