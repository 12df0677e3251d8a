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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func num(n int64) *Number { return &Number{Value: big.NewInt(n)} }
func ref(name string) *Reference { return &Reference{Name: name} }

// Collect the printed form of every visited expression.
func collect(visit func(f func(Expr) Control[struct{}]) Control[struct{}]) []string {
	var seen []string
	visit(func(e Expr) Control[struct{}] {
		seen = append(seen, ExprString(e))
		return Continue[struct{}]()
	})
	return seen
}

func TestVisitOrder(t *testing.T) {
	// (a + 1) * f(b)
	e := &BinaryOp{
		Left:  &BinaryOp{Left: ref("a"), Op: Add, Right: num(1)},
		Op:    Mul,
		Right: &FunctionCall{Function: ref("f"), Args: []Expr{ref("b")}},
	}

	pre := collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
		return VisitExpressions(e, PreOrder, f)
	})
	expected := []string{"(a + 1) * f(b)", "a + 1", "a", "1", "f(b)", "f", "b"}
	if diff := cmp.Diff(expected, pre); diff != "" {
		t.Fatalf("pre-order (-want +got):\n%s", diff)
	}

	post := collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
		return VisitExpressions(e, PostOrder, f)
	})
	expected = []string{"a", "1", "a + 1", "f", "b", "f(b)", "(a + 1) * f(b)"}
	if diff := cmp.Diff(expected, post); diff != "" {
		t.Fatalf("post-order (-want +got):\n%s", diff)
	}
}

func TestVisitBreak(t *testing.T) {
	e := &Tuple{Items: []Expr{ref("a"), num(1), num(2), ref("b")}}
	calls := 0
	c := VisitExpressions(e, PreOrder, func(e Expr) Control[*Number] {
		calls++
		if n, ok := e.(*Number); ok {
			return Break(n)
		}
		return Continue[*Number]()
	})
	n, ok := c.Value()
	if !ok || !c.IsBreak() {
		t.Fatalf("expected the traversal to stop")
	}
	if n.Value.Int64() != 1 {
		t.Fatalf("expected the first number to stop the traversal, got %s", n.Value)
	}
	// tuple, a, 1
	if calls != 3 {
		t.Fatalf("expected 3 callback invocations, got %d", calls)
	}

	c = VisitExpressions(e, PostOrder, func(e Expr) Control[*Number] {
		if _, ok := e.(*Tuple); ok {
			return Break(num(7))
		}
		return Continue[*Number]()
	})
	if n, ok := c.Value(); !ok || n.Value.Int64() != 7 {
		t.Fatalf("expected the root to stop a post-order traversal")
	}

	c = VisitExpressions(e, PreOrder, func(e Expr) Control[*Number] { return Continue[*Number]() })
	if c.IsBreak() {
		t.Fatalf("expected an exhausted traversal to continue")
	}
}

func TestVisitIdentityOrder(t *testing.T) {
	id := &Identity{
		Kind:  Plookup,
		Left:  SelectedExpressions{Selector: ref("s1"), Expressions: []Expr{ref("a"), &BinaryOp{Left: ref("b"), Op: Add, Right: num(1)}}},
		Right: SelectedExpressions{Selector: ref("s2"), Expressions: []Expr{ref("c")}},
	}
	seen := collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
		return VisitIdentity(id, PostOrder, f)
	})
	expected := []string{"s1", "a", "b", "1", "b + 1", "s2", "c"}
	if diff := cmp.Diff(expected, seen); diff != "" {
		t.Fatalf("identity order (-want +got):\n%s", diff)
	}

	// Missing selectors are skipped.
	id.Left.Selector, id.Right.Selector = nil, nil
	seen = collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
		return VisitIdentity(id, PreOrder, f)
	})
	expected = []string{"a", "b + 1", "b", "1", "c"}
	if diff := cmp.Diff(expected, seen); diff != "" {
		t.Fatalf("identity order without selectors (-want +got):\n%s", diff)
	}
}

func TestVisitDefinition(t *testing.T) {
	def := &Array{Elements: []ArrayElement{
		{Pattern: []Expr{num(1), num(2)}},
		{Pattern: []Expr{num(3)}, Repeated: true},
	}}
	seen := collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
		return VisitDefinition(def, PreOrder, f)
	})
	if diff := cmp.Diff([]string{"1", "2", "3"}, seen); diff != "" {
		t.Fatalf("array definition order (-want +got):\n%s", diff)
	}

	for _, def := range []FunctionValueDefinition{
		&Mapping{Expr: ref("x")},
		&Query{Expr: ref("x")},
		&Expression{Expr: ref("x")},
	} {
		seen := collect(func(f func(Expr) Control[struct{}]) Control[struct{}] {
			return VisitDefinition(def, PreOrder, f)
		})
		if diff := cmp.Diff([]string{"x"}, seen); diff != "" {
			t.Fatalf("%s definition (-want +got):\n%s", def.DefinitionName(), diff)
		}
	}

	sym := &Symbol{Name: "w", Kind: Column}
	if c := VisitSymbol(sym, PreOrder, func(Expr) Control[int] { return Break(1) }); c.IsBreak() {
		t.Fatalf("expected a symbol without value to have no expressions")
	}
}

func TestVisitExpressionsMut(t *testing.T) {
	// Replace every reference to `a` with the literal 5.
	def := &Expression{Expr: &Lambda{
		Params: []Pattern{&VariablePattern{Name: "i"}},
		Body:   &BinaryOp{Left: ref("a"), Op: Add, Right: &IndexAccess{Array: ref("a"), Index: num(0)}},
	}}
	VisitDefinitionMut(def, PostOrder, func(slot *Expr) Control[struct{}] {
		if r, ok := (*slot).(*Reference); ok && r.Name == "a" {
			*slot = num(5)
		}
		return Continue[struct{}]()
	})
	if s := DefinitionString("x", def); s != "x = (|i| 5 + 5[0])" {
		t.Fatalf("unexpected rewritten definition: %s", s)
	}

	id := NewPolynomialIdentity(&BinaryOp{Left: ref("a"), Op: Sub, Right: num(1)})
	count := 0
	c := VisitIdentityMut(id, PreOrder, func(slot *Expr) Control[string] {
		count++
		if n, ok := (*slot).(*Number); ok {
			return Break(n.Value.String())
		}
		return Continue[string]()
	})
	if v, ok := c.Value(); !ok || v != "1" || count != 3 {
		t.Fatalf("unexpected mutating identity traversal: %v %v %d", v, ok, count)
	}
}

func TestPrinting(t *testing.T) {
	cases := []struct {
		expr     Expr
		expected string
	}{
		{&Lambda{Params: []Pattern{&VariablePattern{Name: "i"}}, Body: &Tuple{Items: []Expr{&LocalVar{Name: "i"}, &String{Value: "abc"}}}}, `|i| (i, "abc")`},
		{&FunctionCall{Function: &FunctionCall{Function: ref("x"), Args: []Expr{num(2)}}, Args: []Expr{&Lambda{Params: []Pattern{&VariablePattern{Name: "k"}}, Body: &BinaryOp{Left: &LocalVar{Name: "k"}, Op: Add, Right: num(8)}}}}, "x(2)(|k| k + 8)"},
		{&UnaryOp{Op: Next, Expr: ref("a")}, "a'"},
		{&UnaryOp{Op: Minus, Expr: &BinaryOp{Left: ref("a"), Op: Pow, Right: num(2)}}, "-(a ** 2)"},
		{&If{Condition: ref("c"), Then: num(1), Else: num(2)}, "if c { 1 } else { 2 }"},
		{&Match{Scrutinee: ref("x"), Arms: []MatchArm{
			{Pattern: &EnumPattern{Name: "X::B", Fields: []Pattern{&VariablePattern{Name: "n"}}}, Value: &LocalVar{Name: "n"}},
			{Pattern: &CatchAll{}, Value: num(0)},
		}}, "match x { X::B(n) => n, _ => 0 }"},
	}
	for _, c := range cases {
		if s := ExprString(c.expr); s != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, s)
		}
	}

	id := &Identity{
		Kind:  Plookup,
		Left:  SelectedExpressions{Expressions: []Expr{&BinaryOp{Left: ref("a"), Op: Add, Right: num(1)}}},
		Right: SelectedExpressions{Expressions: []Expr{ref("BYTE")}},
	}
	if s := IdentityString(id); s != "{ a + 1 } in { BYTE }" {
		t.Fatalf("unexpected identity string: %s", s)
	}
}
