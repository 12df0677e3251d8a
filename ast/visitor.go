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

// VisitOrder selects whether a node is visited before or after its descendants.
type VisitOrder uint8

const (
	PreOrder VisitOrder = iota
	PostOrder
)

// Control is returned by visitor callbacks: either continue the traversal, or stop it with a
// result. The first result which stops a traversal is returned from the traversal.
type Control[B any] struct {
	value   B
	stopped bool
}

// Continue the traversal.
func Continue[B any]() Control[B] { return Control[B]{} }

// Break stops the traversal with the result v.
func Break[B any](v B) Control[B] { return Control[B]{value: v, stopped: true} }

// IsBreak checks whether the traversal was stopped.
func (c Control[B]) IsBreak() bool { return c.stopped }

// Value returns the result of a stopped traversal.
func (c Control[B]) Value() (B, bool) { return c.value, c.stopped }

// VisitExpressions calls f for e and every expression nested in e, in the given order.
// Patterns are not expressions and are not visited.
func VisitExpressions[B any](e Expr, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	if e == nil {
		return Continue[B]()
	}
	if order == PreOrder {
		if c := f(e); c.stopped {
			return c
		}
	}
	if c := visitChildren(e, order, f); c.stopped {
		return c
	}
	if order == PostOrder {
		return f(e)
	}
	return Continue[B]()
}

func visitAll[B any](es []Expr, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	for _, e := range es {
		if c := VisitExpressions(e, order, f); c.stopped {
			return c
		}
	}
	return Continue[B]()
}

func visitChildren[B any](e Expr, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	switch e := e.(type) {
	case *Reference, *LocalVar, *Number, *String:
		return Continue[B]()

	case *Tuple:
		return visitAll(e.Items, order, f)

	case *ArrayLiteral:
		return visitAll(e.Items, order, f)

	case *Lambda:
		return VisitExpressions(e.Body, order, f)

	case *FunctionCall:
		if c := VisitExpressions(e.Function, order, f); c.stopped {
			return c
		}
		return visitAll(e.Args, order, f)

	case *IndexAccess:
		if c := VisitExpressions(e.Array, order, f); c.stopped {
			return c
		}
		return VisitExpressions(e.Index, order, f)

	case *BinaryOp:
		if c := VisitExpressions(e.Left, order, f); c.stopped {
			return c
		}
		return VisitExpressions(e.Right, order, f)

	case *UnaryOp:
		return VisitExpressions(e.Expr, order, f)

	case *If:
		if c := VisitExpressions(e.Condition, order, f); c.stopped {
			return c
		}
		if c := VisitExpressions(e.Then, order, f); c.stopped {
			return c
		}
		return VisitExpressions(e.Else, order, f)

	case *Match:
		if c := VisitExpressions(e.Scrutinee, order, f); c.stopped {
			return c
		}
		for _, arm := range e.Arms {
			if c := VisitExpressions(arm.Value, order, f); c.stopped {
				return c
			}
		}
		return Continue[B]()
	}
	panic("unknown expression type: " + e.ExprName())
}

// VisitExpressionsMut calls f for the expression stored in slot and every expression nested
// in it, in the given order. The callback may modify the expression in place or replace it
// by assigning to the slot; in pre-order, the children of the replacement are visited.
func VisitExpressionsMut[B any](slot *Expr, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	if *slot == nil {
		return Continue[B]()
	}
	if order == PreOrder {
		if c := f(slot); c.stopped {
			return c
		}
	}
	if c := visitChildrenMut(*slot, order, f); c.stopped {
		return c
	}
	if order == PostOrder {
		return f(slot)
	}
	return Continue[B]()
}

func visitAllMut[B any](es []Expr, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	for i := range es {
		if c := VisitExpressionsMut(&es[i], order, f); c.stopped {
			return c
		}
	}
	return Continue[B]()
}

func visitChildrenMut[B any](e Expr, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	switch e := e.(type) {
	case *Reference, *LocalVar, *Number, *String:
		return Continue[B]()

	case *Tuple:
		return visitAllMut(e.Items, order, f)

	case *ArrayLiteral:
		return visitAllMut(e.Items, order, f)

	case *Lambda:
		return VisitExpressionsMut(&e.Body, order, f)

	case *FunctionCall:
		if c := VisitExpressionsMut(&e.Function, order, f); c.stopped {
			return c
		}
		return visitAllMut(e.Args, order, f)

	case *IndexAccess:
		if c := VisitExpressionsMut(&e.Array, order, f); c.stopped {
			return c
		}
		return VisitExpressionsMut(&e.Index, order, f)

	case *BinaryOp:
		if c := VisitExpressionsMut(&e.Left, order, f); c.stopped {
			return c
		}
		return VisitExpressionsMut(&e.Right, order, f)

	case *UnaryOp:
		return VisitExpressionsMut(&e.Expr, order, f)

	case *If:
		if c := VisitExpressionsMut(&e.Condition, order, f); c.stopped {
			return c
		}
		if c := VisitExpressionsMut(&e.Then, order, f); c.stopped {
			return c
		}
		return VisitExpressionsMut(&e.Else, order, f)

	case *Match:
		if c := VisitExpressionsMut(&e.Scrutinee, order, f); c.stopped {
			return c
		}
		for i := range e.Arms {
			if c := VisitExpressionsMut(&e.Arms[i].Value, order, f); c.stopped {
				return c
			}
		}
		return Continue[B]()
	}
	panic("unknown expression type: " + e.ExprName())
}

// VisitIdentity visits the left selector (if present), the left expressions, the right
// selector (if present) and the right expressions, each as a separate traversal root.
func VisitIdentity[B any](id *Identity, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	for _, side := range [2]*SelectedExpressions{&id.Left, &id.Right} {
		if c := VisitExpressions(side.Selector, order, f); c.stopped {
			return c
		}
		if c := visitAll(side.Expressions, order, f); c.stopped {
			return c
		}
	}
	return Continue[B]()
}

// VisitIdentityMut is the mutating variant of VisitIdentity.
func VisitIdentityMut[B any](id *Identity, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	for _, side := range [2]*SelectedExpressions{&id.Left, &id.Right} {
		if c := VisitExpressionsMut(&side.Selector, order, f); c.stopped {
			return c
		}
		if c := visitAllMut(side.Expressions, order, f); c.stopped {
			return c
		}
	}
	return Continue[B]()
}

// VisitDefinition visits the wrapped expression of a mapping, query or plain expression, or
// the patterns of every element of an array, in array order then pattern order.
func VisitDefinition[B any](def FunctionValueDefinition, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	switch def := def.(type) {
	case *Mapping:
		return VisitExpressions(def.Expr, order, f)
	case *Query:
		return VisitExpressions(def.Expr, order, f)
	case *Expression:
		return VisitExpressions(def.Expr, order, f)
	case *Array:
		for _, el := range def.Elements {
			if c := visitAll(el.Pattern, order, f); c.stopped {
				return c
			}
		}
		return Continue[B]()
	case nil:
		return Continue[B]()
	}
	panic("unknown definition type: " + def.DefinitionName())
}

// VisitDefinitionMut is the mutating variant of VisitDefinition.
func VisitDefinitionMut[B any](def FunctionValueDefinition, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	switch def := def.(type) {
	case *Mapping:
		return VisitExpressionsMut(&def.Expr, order, f)
	case *Query:
		return VisitExpressionsMut(&def.Expr, order, f)
	case *Expression:
		return VisitExpressionsMut(&def.Expr, order, f)
	case *Array:
		for i := range def.Elements {
			if c := visitAllMut(def.Elements[i].Pattern, order, f); c.stopped {
				return c
			}
		}
		return Continue[B]()
	case nil:
		return Continue[B]()
	}
	panic("unknown definition type: " + def.DefinitionName())
}

// VisitSymbol visits the definition of a symbol, if it has one.
func VisitSymbol[B any](sym *Symbol, order VisitOrder, f func(Expr) Control[B]) Control[B] {
	return VisitDefinition(sym.Value, order, f)
}

// VisitSymbolMut is the mutating variant of VisitSymbol.
func VisitSymbolMut[B any](sym *Symbol, order VisitOrder, f func(*Expr) Control[B]) Control[B] {
	return VisitDefinitionMut(sym.Value, order, f)
}
