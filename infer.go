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
	"github.com/pkg/errors"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/types"
)

// Infer the type of e, then unify it with the type required by the context of e.
func (c *Checker) expect(e ast.Expr, expected types.Type) error {
	t, err := c.infer(e)
	if err != nil {
		return err
	}
	// types are printed before unification, which may partially succeed
	inferred, want := c.u.Apply(t), c.u.Apply(expected)
	if err := c.u.Unify(t, expected); err != nil {
		return &SubExpressionError{Expr: ast.ExprString(e), Expected: want, Inferred: inferred, Err: err}
	}
	return nil
}

// Infer the type of an expression. Unknown parts of the result are type-variables, which may be
// solved by later constraints.
func (c *Checker) infer(e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Reference:
		return c.inferReference(e)

	case *ast.LocalVar:
		for i := len(c.locals) - 1; i >= 0; i-- {
			if c.locals[i].name == e.Name {
				return c.locals[i].typ, nil
			}
		}
		return nil, usageErrorf("Unknown local variable %s", e.Name)

	case *ast.Number:
		tv := c.u.Fresh(types.CapabilitySet(types.FromLiteral))
		c.sites = append(c.sites, site{kind: literalSite, expr: e, name: ast.ExprString(e), types: []types.Type{tv}})
		return tv, nil

	case *ast.String:
		return types.String, nil

	case *ast.Tuple:
		items := make([]types.Type, len(e.Items))
		for i, item := range e.Items {
			t, err := c.infer(item)
			if err != nil {
				return nil, err
			}
			items[i] = t
		}
		return &types.Tuple{Items: items}, nil

	case *ast.ArrayLiteral:
		elem := c.u.Fresh(types.NoCapabilities)
		for _, item := range e.Items {
			if err := c.expect(item, elem); err != nil {
				return nil, err
			}
		}
		return &types.Array{Base: elem}, nil

	case *ast.Lambda:
		mark := len(c.locals)
		defer func() { c.locals = c.locals[:mark] }()
		params := make([]types.Type, len(e.Params))
		for i, p := range e.Params {
			params[i] = c.u.Fresh(types.NoCapabilities)
			if err := c.bindPattern(p, params[i]); err != nil {
				return nil, err
			}
		}
		value, err := c.infer(e.Body)
		if err != nil {
			return nil, err
		}
		return &types.Function{Params: params, Value: value}, nil

	case *ast.FunctionCall:
		return c.inferCall(e)

	case *ast.IndexAccess:
		return c.inferOperator(IndexAccessScheme(), e.Array, e.Index)

	case *ast.BinaryOp:
		return c.inferOperator(BinaryOperatorScheme(e.Op), e.Left, e.Right)

	case *ast.UnaryOp:
		return c.inferOperator(UnaryOperatorScheme(e.Op), e.Expr)

	case *ast.If:
		if err := c.expect(e.Condition, types.Bool); err != nil {
			return nil, err
		}
		result := c.u.Fresh(types.NoCapabilities)
		if err := c.expect(e.Then, result); err != nil {
			return nil, err
		}
		if err := c.expect(e.Else, result); err != nil {
			return nil, err
		}
		return result, nil

	case *ast.Match:
		scrutinee, err := c.infer(e.Scrutinee)
		if err != nil {
			return nil, err
		}
		result := c.u.Fresh(types.NoCapabilities)
		for _, arm := range e.Arms {
			if err := c.checkArm(arm, scrutinee, result); err != nil {
				return nil, err
			}
		}
		return result, nil

	case nil:
		return nil, usageErrorf("Missing expression")
	}
	panic("unknown expression type: " + e.ExprName())
}

func (c *Checker) checkArm(arm ast.MatchArm, scrutinee, result types.Type) error {
	mark := len(c.locals)
	defer func() { c.locals = c.locals[:mark] }()
	if err := c.bindPattern(arm.Pattern, scrutinee); err != nil {
		return err
	}
	return c.expect(arm.Value, result)
}

func (c *Checker) inferReference(e *ast.Reference) (types.Type, error) {
	if id, ok := c.symbols.lookup(e.Name); ok {
		slot := c.symbols.slot(id)
		if slot.isGeneric() {
			t, args := c.u.Instantiate(slot.declared, false)
			c.sites = append(c.sites, site{kind: referenceSite, expr: e, name: e.Name, types: args})
			return t, nil
		}
		return types.ColumnToExpr(slot.mono), nil
	}
	if enum, ok := c.enums[e.Name]; ok {
		return nil, &ValueExpectedError{Name: enum.Name}
	}
	if enumName, variantName, ok := types.SplitVariantName(e.Name); ok {
		if enum, ok := c.enums[enumName]; ok {
			if v, ok := enum.Variant(variantName); ok {
				return enum.VariantType(v), nil
			}
			return nil, usageErrorf("Unknown variant %s of enum %s", variantName, enumName)
		}
	}
	return nil, usageErrorf("Unknown symbol %s", e.Name)
}

func (c *Checker) inferCall(e *ast.FunctionCall) (types.Type, error) {
	callee, err := c.infer(e.Function)
	if err != nil {
		return nil, err
	}
	fn := &types.Function{Params: c.u.Vars.NewList(len(e.Args)), Value: c.u.Fresh(types.NoCapabilities)}
	inferred := c.u.Apply(callee)
	if err := c.u.Unify(callee, fn); err != nil {
		return nil, &SubExpressionError{Expr: ast.ExprString(e.Function), Expected: fn, Inferred: inferred, Err: err}
	}
	for i, arg := range e.Args {
		if err := c.expect(arg, fn.Params[i]); err != nil {
			return nil, err
		}
	}
	return fn.Value, nil
}

// Operators are typed like calls of builtin functions.
func (c *Checker) inferOperator(ts *types.TypeScheme, operands ...ast.Expr) (types.Type, error) {
	t, _ := c.u.Instantiate(ts, false)
	fn := t.(*types.Function)
	for i, operand := range operands {
		if err := c.expect(operand, fn.Params[i]); err != nil {
			return nil, err
		}
	}
	return fn.Value, nil
}

// Check a pattern against the type of the matched value, and bring the variables of the pattern
// into scope.
func (c *Checker) bindPattern(p ast.Pattern, t types.Type) error {
	switch p := p.(type) {
	case *ast.CatchAll:
		return nil

	case *ast.VariablePattern:
		c.locals = append(c.locals, local{name: p.Name, typ: t})
		return nil

	case *ast.NumberPattern:
		tv := c.u.Fresh(types.CapabilitySet(types.FromLiteral))
		c.sites = append(c.sites, site{kind: patternSite, pattern: p, name: ast.PatternString(p), types: []types.Type{tv}})
		return c.unifyPattern(p, tv, t)

	case *ast.StringPattern:
		return c.unifyPattern(p, types.String, t)

	case *ast.TuplePattern:
		items := make([]types.Type, len(p.Items))
		for i := range items {
			items[i] = c.u.Fresh(types.NoCapabilities)
		}
		if err := c.unifyPattern(p, &types.Tuple{Items: items}, t); err != nil {
			return err
		}
		for i, item := range p.Items {
			if err := c.bindPattern(item, items[i]); err != nil {
				return err
			}
		}
		return nil

	case *ast.ArrayPattern:
		elem := c.u.Fresh(types.NoCapabilities)
		if err := c.unifyPattern(p, &types.Array{Base: elem}, t); err != nil {
			return err
		}
		for _, item := range p.Items {
			if err := c.bindPattern(item, elem); err != nil {
				return err
			}
		}
		return nil

	case *ast.EnumPattern:
		enumName, variantName, ok := types.SplitVariantName(p.Name)
		enum, found := c.enums[enumName]
		if !ok || !found {
			return usageErrorf("Unknown enum variant %s", p.Name)
		}
		v, ok := enum.Variant(variantName)
		if !ok {
			return usageErrorf("Unknown variant %s of enum %s", variantName, enumName)
		}
		if (p.Fields == nil) != (v.Fields == nil) || len(p.Fields) != len(v.Fields) {
			return usageErrorf("Pattern %s has %d fields, but variant %s has %d", ast.PatternString(p), len(p.Fields), p.Name, len(v.Fields))
		}
		if err := c.unifyPattern(p, enum.Type(), t); err != nil {
			return err
		}
		for i, field := range p.Fields {
			if err := c.bindPattern(field, v.Fields[i]); err != nil {
				return err
			}
		}
		return nil
	}
	panic("unknown pattern type: " + p.PatternName())
}

func (c *Checker) unifyPattern(p ast.Pattern, pt, t types.Type) error {
	if err := c.u.Unify(pt, t); err != nil {
		return errors.Wrapf(err, "Error checking pattern %s", ast.PatternString(p))
	}
	return nil
}
