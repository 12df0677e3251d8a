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

// Type is the base interface for all types. The set of implementations is closed:
// *Var, Primitive, *Tuple, *Array, *Function and *Named.
type Type interface {
	TypeName() string
	String() string
	isType()
}

var (
	_ Type = (*Var)(nil)
	_ Type = Primitive(0)
	_ Type = (*Tuple)(nil)
	_ Type = (*Array)(nil)
	_ Type = (*Function)(nil)
	_ Type = (*Named)(nil)
)

func (t *Var) TypeName() string      { return "Var" }
func (t Primitive) TypeName() string { return "Primitive" }
func (t *Tuple) TypeName() string    { return "Tuple" }
func (t *Array) TypeName() string    { return "Array" }
func (t *Function) TypeName() string { return "Function" }
func (t *Named) TypeName() string    { return "Named" }

func (*Var) isType()      {}
func (Primitive) isType() {}
func (*Tuple) isType()    {}
func (*Array) isType()    {}
func (*Function) isType() {}
func (*Named) isType()    {}

// Type-variable. Variables are identified by ID; Name is only used for printing
// (variables of declared or canonical type schemes carry the name they are shown with).
type Var struct {
	ID   int
	Name string
}

// Create a type-variable with the given id.
func NewVar(id int) *Var { return &Var{ID: id} }

// Create a named type-variable with the given id.
func NewNamedVar(id int, name string) *Var { return &Var{ID: id, Name: name} }

// Elementary type: `int`, `fe`, `col`, ...
type Primitive uint8

const (
	Bool Primitive = iota
	Int
	Fe
	String
	Col
	Expr
	Constr
	// Bottom is the type of expressions which never produce a value (`!`).
	Bottom
)

var primitiveNames = [...]string{
	Bool:   "bool",
	Int:    "int",
	Fe:     "fe",
	String: "string",
	Col:    "col",
	Expr:   "expr",
	Constr: "constr",
	Bottom: "!",
}

// Tuple type: `(int, fe)`
type Tuple struct {
	Items []Type
}

// Array type: `int[]` or `col[16]`. Length is only meaningful when Sized is set.
type Array struct {
	Base   Type
	Length uint64
	Sized  bool
}

// Function type: `int, int -> int`
type Function struct {
	Params []Type
	Value  Type
}

// Reference to a declared enum: `X`
type Named struct {
	Name string
}

// FreeVars returns the type-variables of t in first-occurrence order, determined by a
// depth-first, left-to-right traversal.
func FreeVars(t Type) []*Var {
	var vars []*Var
	seen := make(map[int]bool, 8)
	visitVars(t, func(v *Var) bool {
		if !seen[v.ID] {
			seen[v.ID] = true
			vars = append(vars, v)
		}
		return true
	})
	return vars
}

// ContainsVar checks whether the type-variable with the given id occurs in t.
func ContainsVar(t Type, id int) bool {
	found := false
	visitVars(t, func(v *Var) bool {
		found = v.ID == id
		return !found
	})
	return found
}

// IsConcrete checks that t contains no type-variables.
func IsConcrete(t Type) bool {
	concrete := true
	visitVars(t, func(*Var) bool {
		concrete = false
		return false
	})
	return concrete
}

// If f returns false, the traversal will be stopped.
func visitVars(t Type, f func(*Var) bool) bool {
	switch t := t.(type) {
	case *Var:
		return f(t)
	case Primitive, *Named:
		return true
	case *Tuple:
		for _, item := range t.Items {
			if !visitVars(item, f) {
				return false
			}
		}
		return true
	case *Array:
		return visitVars(t.Base, f)
	case *Function:
		for _, p := range t.Params {
			if !visitVars(p, f) {
				return false
			}
		}
		return visitVars(t.Value, f)
	case nil:
		return true
	}
	panic("unexpected type " + t.TypeName())
}

// MapVars rebuilds t, replacing every type-variable with the result of f. Sub-terms
// which do not contain type-variables are shared with t.
func MapVars(t Type, f func(*Var) Type) Type {
	switch t := t.(type) {
	case *Var:
		return f(t)
	case Primitive, *Named:
		return t
	case *Tuple:
		items := make([]Type, len(t.Items))
		for i, item := range t.Items {
			items[i] = MapVars(item, f)
		}
		return &Tuple{Items: items}
	case *Array:
		return &Array{Base: MapVars(t.Base, f), Length: t.Length, Sized: t.Sized}
	case *Function:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = MapVars(p, f)
		}
		return &Function{Params: params, Value: MapVars(t.Value, f)}
	}
	panic("unexpected type " + t.TypeName())
}

// ColumnToExpr converts the declared type of a column into the type of a reference to
// it: `col` becomes `expr` and `col[n]` becomes `expr[n]`. Other types are returned as-is.
func ColumnToExpr(t Type) Type {
	switch t := t.(type) {
	case Primitive:
		if t == Col {
			return Expr
		}
	case *Array:
		if t.Base == Col {
			return &Array{Base: Expr, Length: t.Length, Sized: t.Sized}
		}
	}
	return t
}
