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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// EmptySubstitution contains no bindings.
var EmptySubstitution = Substitution{emptyMap}

// Substitution contains immutable mappings from type-variable ids to types. Extending a
// substitution never modifies the original, so earlier substitutions remain valid snapshots.
type Substitution struct {
	m *immutable.SortedMap
}

func NewSubstitution() Substitution { return EmptySubstitution }

// Get the number of bindings in the substitution.
func (s Substitution) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Lookup returns the type bound to the type-variable with the given id.
func (s Substitution) Lookup(id int) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Extend returns a substitution which additionally binds id to t.
func (s Substitution) Extend(id int, t Type) Substitution {
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return Substitution{m.Set(id, t)}
}

// Range iterates over bindings in order of type-variable id.
// If f returns false, iteration will be stopped.
func (s Substitution) Range(f func(int, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Resolve follows bindings for a chain of type-variables, returning the first type which
// is not a bound type-variable.
func (s Substitution) Resolve(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		next, ok := s.Lookup(tv.ID)
		if !ok {
			return t
		}
		t = next
	}
}

// Apply rewrites every type-variable occurrence in t, recursively applying the substitution
// to the replacement types.
func (s Substitution) Apply(t Type) Type {
	if s.Len() == 0 || IsConcrete(t) {
		return t
	}
	return MapVars(t, func(tv *Var) Type {
		if next, ok := s.Lookup(tv.ID); ok {
			return s.Apply(next)
		}
		return tv
	})
}
