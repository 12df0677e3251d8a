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

// Instantiate replaces the quantified type-variables of a scheme with fresh type-variables. The
// fresh type-variables are returned in the order of the scheme's variables; they are nil for a
// scheme without variables.
//
// Flexible instantiations carry the bounds of the quantified variables. Rigid instantiations keep
// the printed names of the quantified variables; their bounds are checked separately, by comparing
// them with Required after the uses of the type-variables have been checked.
func (u *Unifier) Instantiate(ts *types.TypeScheme, rigid bool) (types.Type, []types.Type) {
	if len(ts.Vars) == 0 {
		return ts.Type, nil
	}
	args := make([]types.Type, len(ts.Vars))
	// scheme ids and fresh ids share a namespace, so the renaming is applied in one pass
	renamed := make(map[int]types.Type, len(ts.Vars))
	for i, v := range ts.Vars {
		var tv *types.Var
		if rigid {
			tv = u.FreshRigid(types.VarName(v.Var))
		} else {
			tv = u.Fresh(v.Bounds.Closure())
		}
		args[i] = tv
		renamed[v.Var.ID] = tv
	}
	t := types.MapVars(ts.Type, func(tv *types.Var) types.Type {
		if r, ok := renamed[tv.ID]; ok {
			return r
		}
		return tv
	})
	return t, args
}
