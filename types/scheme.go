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
	"strconv"
)

// SchemeVar is a quantified type-variable of a type scheme, together with the
// capabilities every instantiation of it must support.
type SchemeVar struct {
	Var    *Var
	Bounds Capabilities
}

// TypeScheme is a type generalized over a set of capability-constrained type-variables:
// `<T: Add> T, T -> T`
type TypeScheme struct {
	Vars []SchemeVar
	Type Type
}

// Mono creates a type scheme without quantified type-variables.
func Mono(t Type) *TypeScheme { return &TypeScheme{Type: t} }

// IsGeneric checks whether the scheme quantifies over at least one type-variable.
func (ts *TypeScheme) IsGeneric() bool { return len(ts.Vars) > 0 }

// Lookup returns the quantified type-variable with the given id.
func (ts *TypeScheme) Lookup(id int) (SchemeVar, bool) {
	for _, v := range ts.Vars {
		if v.Var.ID == id {
			return v, true
		}
	}
	return SchemeVar{}, false
}

// Get the name which is printed for a type-variable.
func VarName(tv *Var) string {
	if tv.Name != "" {
		return tv.Name
	}
	return "T" + strconv.Itoa(tv.ID)
}

// Name of the i-th of n canonical type-variables: `T` for a single variable, else `T1..Tn`.
func canonicalName(i, n int) string {
	if n == 1 {
		return "T"
	}
	return "T" + strconv.Itoa(i+1)
}

// Temporary ids used during renaming are negative, which keeps them disjoint from every
// id allocated during inference and from the canonical ids 1..n.
func temporaryId(i int) int { return -(i + 1) }

// SimplifyTypeVars returns an equivalent scheme in canonical form: quantified variables are
// ordered and renamed by their first occurrence within the type (variables which do not
// occur are kept at the end in their original order), and redundant bounds are removed.
//
// Renaming happens in two passes through a disjoint temporary namespace, so variables which
// already carry canonical ids never collide with the new ones.
func (ts *TypeScheme) SimplifyTypeVars() *TypeScheme {
	order := make([]SchemeVar, 0, len(ts.Vars))
	placed := make(map[int]bool, len(ts.Vars))
	for _, tv := range FreeVars(ts.Type) {
		if v, ok := ts.Lookup(tv.ID); ok && !placed[tv.ID] {
			placed[tv.ID] = true
			order = append(order, v)
		}
	}
	for _, v := range ts.Vars {
		if !placed[v.Var.ID] {
			placed[v.Var.ID] = true
			order = append(order, v)
		}
	}

	toTemp, fromTemp := NewSubstitution(), NewSubstitution()
	vars := make([]SchemeVar, len(order))
	for i, v := range order {
		tmp := &Var{ID: temporaryId(i)}
		final := &Var{ID: i + 1, Name: canonicalName(i, len(order))}
		toTemp = toTemp.Extend(v.Var.ID, tmp)
		fromTemp = fromTemp.Extend(tmp.ID, final)
		vars[i] = SchemeVar{Var: final, Bounds: v.Bounds.Minimize()}
	}
	return &TypeScheme{Vars: vars, Type: fromTemp.Apply(toTemp.Apply(ts.Type))}
}

// MinimizeBounds returns a copy of the scheme with redundant bounds removed, keeping the
// names and order of the quantified variables.
func (ts *TypeScheme) MinimizeBounds() *TypeScheme {
	vars := make([]SchemeVar, len(ts.Vars))
	for i, v := range ts.Vars {
		vars[i] = SchemeVar{Var: v.Var, Bounds: v.Bounds.Minimize()}
	}
	return &TypeScheme{Vars: vars, Type: ts.Type}
}

// Equal checks whether two schemes are equal up to renaming of their quantified variables
// and redundant bounds.
func (ts *TypeScheme) Equal(other *TypeScheme) bool {
	if len(ts.Vars) != len(other.Vars) {
		return false
	}
	a, b := ts.SimplifyTypeVars(), other.SimplifyTypeVars()
	for i := range a.Vars {
		if a.Vars[i].Bounds != b.Vars[i].Bounds {
			return false
		}
	}
	return Equal(a.Type, b.Type)
}

// Equal compares two types structurally. Type-variables are compared by id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.ID == b.ID
	case Primitive:
		b, ok := b.(Primitive)
		return ok && a == b
	case *Named:
		b, ok := b.(*Named)
		return ok && a.Name == b.Name
	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case *Array:
		b, ok := b.(*Array)
		return ok && a.Sized == b.Sized && a.Length == b.Length && Equal(a.Base, b.Base)
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Value, b.Value)
	}
	return false
}
