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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) String() string { return p.sb.String() }

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.String()
	p.Release()
	return s
}

func (t *Var) String() string      { return VarName(t) }
func (t Primitive) String() string { return primitiveName(t) }
func (t *Tuple) String() string    { return TypeString(t) }
func (t *Array) String() string    { return TypeString(t) }
func (t *Function) String() string { return TypeString(t) }
func (t *Named) String() string    { return t.Name }

func primitiveName(t Primitive) string {
	if int(t) < len(primitiveNames) {
		return primitiveNames[t]
	}
	return "Primitive(" + strconv.Itoa(int(t)) + ")"
}

// Function types are parenthesized when they occur as a component of another type.
func typeString(p *typePrinter, component bool, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(VarName(t))

	case Primitive:
		p.sb.WriteString(primitiveName(t))

	case *Named:
		p.sb.WriteString(t.Name)

	case *Tuple:
		p.sb.WriteByte('(')
		for i, item := range t.Items {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, true, item)
		}
		p.sb.WriteByte(')')

	case *Array:
		typeString(p, true, t.Base)
		p.sb.WriteByte('[')
		if t.Sized {
			p.sb.WriteString(strconv.FormatUint(t.Length, 10))
		}
		p.sb.WriteByte(']')

	case *Function:
		if component {
			p.sb.WriteByte('(')
		}
		for i, param := range t.Params {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, true, param)
		}
		if len(t.Params) > 0 {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString("-> ")
		typeString(p, true, t.Value)
		if component {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}

// VarsString returns the quantified variables of the scheme with their bounds:
// `T1: FromLiteral + Sum, T2`
func (ts *TypeScheme) VarsString() string {
	p := newTypePrinter()
	for i, v := range ts.Vars {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(VarName(v.Var))
		if !v.Bounds.IsEmpty() {
			p.sb.WriteString(": ")
			p.sb.WriteString(v.Bounds.String())
		}
	}
	s := p.String()
	p.Release()
	return s
}

// `<T: Add> T, T -> T`
func (ts *TypeScheme) String() string {
	if len(ts.Vars) == 0 {
		return TypeString(ts.Type)
	}
	return "<" + ts.VarsString() + "> " + TypeString(ts.Type)
}

// FormatSchemeAroundName renders a symbol declaration: `<T: Add> sum: T, T -> T`. The
// bounds are omitted for schemes without quantified variables, and the type is omitted
// entirely for a nil scheme.
func FormatSchemeAroundName(name string, ts *TypeScheme) string {
	if ts == nil {
		return name
	}
	if len(ts.Vars) == 0 {
		return name + ": " + TypeString(ts.Type)
	}
	return "<" + ts.VarsString() + "> " + name + ": " + TypeString(ts.Type)
}
