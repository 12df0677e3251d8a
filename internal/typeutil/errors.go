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
	"strconv"

	"github.com/wdamron/pilcheck/types"
)

// UnifyError is returned when two types cannot be made equal, including when a type-variable
// would have to contain itself. A and B are the conflicting types with the substitution applied.
type UnifyError struct {
	A, B types.Type
}

func (e *UnifyError) Error() string {
	return "Cannot unify types " + types.TypeString(e.A) + " and " + types.TypeString(e.B)
}

// CapabilityError is returned when a type does not support the capabilities required of a
// type-variable it was unified with.
type CapabilityError struct {
	Type    types.Type
	Missing types.Capabilities
}

func (e *CapabilityError) Error() string {
	return "Type " + types.TypeString(e.Type) + " does not satisfy the bounds " + e.Missing.String()
}

// ArityError is returned when two function types have different numbers of parameters.
type ArityError struct {
	A, B *types.Function
}

func (e *ArityError) Error() string {
	return "Cannot unify types " + types.TypeString(e.A) + " and " + types.TypeString(e.B) +
		": expected " + strconv.Itoa(len(e.B.Params)) + " arguments, got " + strconv.Itoa(len(e.A.Params))
}
