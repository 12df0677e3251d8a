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

// VarTracker allocates type-variables with unique ids and tracks allocations.
type VarTracker struct {
	// NextId is the id of the next allocated type-variable. Ids start at 1.
	NextId int
	block  []types.Var
}

func (vt *VarTracker) Reset() { vt.NextId, vt.block = 0, nil }

// New allocates a type-variable with a fresh id.
func (vt *VarTracker) New() *types.Var { return vt.NewNamed("") }

// NewNamed allocates a type-variable with a fresh id, printed with the given name.
func (vt *VarTracker) NewNamed(name string) *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, 8)
	}
	if vt.NextId == 0 {
		vt.NextId = 1
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.ID, tv.Name = vt.NextId, name
	vt.NextId++
	return tv
}

// NewList allocates count type-variables with fresh ids.
func (vt *VarTracker) NewList(count int) []types.Type {
	if count == 0 {
		return nil
	}
	ts := make([]types.Type, count)
	for i := range ts {
		ts[i] = vt.New()
	}
	return ts
}
