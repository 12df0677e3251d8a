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

package types

import (
	"testing"
)

func TestCapabilityImplication(t *testing.T) {
	s := CapabilitySet(Sum)
	if !s.Closure().Has(Add) {
		t.Fatalf("expected Sum to imply Add")
	}
	if s := CapabilitySet(Add, Sum, FromLiteral).Minimize(); s != CapabilitySet(Sum, FromLiteral) {
		t.Fatalf("unexpected minimized set: %s", s)
	}
	if s := CapabilitySet(Add).Closure(); s != CapabilitySet(Add) {
		t.Fatalf("expected Add to imply nothing, got %s", s)
	}
}

func TestCapabilityStringAndParse(t *testing.T) {
	s := CapabilitySet(Pow, FromLiteral, Add)
	if s.String() != "Add + FromLiteral + Pow" {
		t.Fatalf("unexpected string: %s", s)
	}
	for _, c := range s.List() {
		parsed, err := ParseCapability(c.String())
		if err != nil || parsed != c {
			t.Fatalf("%s: %v", c, err)
		}
	}
	if _, err := ParseCapability("Div"); err == nil {
		t.Fatalf("expected unknown capability error")
	}
}

func TestSupported(t *testing.T) {
	cases := []struct {
		ty   Type
		caps Capabilities
		ok   bool
	}{
		{Int, CapabilitySet(Add, Mod, Ord, FromLiteral), true},
		{Fe, CapabilitySet(Mul, Pow, FromLiteral), true},
		{Fe, CapabilitySet(Ord), false},
		{Expr, CapabilitySet(Add, Sub, Mul, FromLiteral), true},
		{String, CapabilitySet(Add, Eq), true},
		{String, CapabilitySet(Mul), false},
		{Bool, CapabilitySet(Eq), true},
		{&Array{Base: Int}, CapabilitySet(Add), true},
		{&Tuple{}, CapabilitySet(Eq), false},
		{&Named{Name: "X"}, CapabilitySet(Add), false},
	}
	for _, c := range cases {
		if got := Supported(c.ty).Contains(c.caps); got != c.ok {
			t.Fatalf("%s supports %s: expected %v", TypeString(c.ty), c.caps, c.ok)
		}
	}
}
