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

package typeutil

import (
	"github.com/wdamron/pilcheck/types"
)

// Generalize quantifies the unbound flexible type-variables of t, with their minimized bounds,
// and returns the scheme in canonical form. Rigid type-variables are not quantified.
func (u *Unifier) Generalize(t types.Type) *types.TypeScheme {
	t = u.Apply(t)
	ts := &types.TypeScheme{Type: t}
	for _, tv := range types.FreeVars(t) {
		if u.IsRigid(tv.ID) {
			continue
		}
		ts.Vars = append(ts.Vars, types.SchemeVar{Var: tv, Bounds: u.Bounds(tv.ID).Minimize()})
	}
	if len(ts.Vars) == 0 {
		return ts
	}
	return ts.SimplifyTypeVars()
}

// ApplyDefault binds every unbound flexible type-variable of t which is required to support
// FromLiteral to the type def. It returns the first error encountered, after which some
// type-variables may already have been bound.
func (u *Unifier) ApplyDefault(t types.Type, def types.Type) error {
	for _, tv := range types.FreeVars(u.Apply(t)) {
		if u.IsRigid(tv.ID) || !u.Bounds(tv.ID).Has(types.FromLiteral) {
			continue
		}
		if err := u.Unify(tv, def); err != nil {
			return err
		}
	}
	return nil
}
