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
	"strings"
)

// EnumDeclaration is an algebraic data type: `enum X { A, B(int), C(string[], int) }`
type EnumDeclaration struct {
	Name     string
	Variants []EnumVariant
}

// EnumVariant is a variant of an enum. A variant without fields (Fields == nil) is a value
// of the enum type; a variant with fields is a constructor function.
type EnumVariant struct {
	Name   string
	Fields []Type
}

// Type returns the named type of the enum.
func (e *EnumDeclaration) Type() *Named { return &Named{Name: e.Name} }

// Variant looks up a variant by its (unqualified) name.
func (e *EnumDeclaration) Variant(name string) (*EnumVariant, bool) {
	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return &e.Variants[i], true
		}
	}
	return nil, false
}

// VariantType returns the type of a reference to the variant: the enum type itself for a
// variant without fields, otherwise a function from the field types to the enum type.
func (e *EnumDeclaration) VariantType(v *EnumVariant) Type {
	if v.Fields == nil {
		return e.Type()
	}
	params := make([]Type, len(v.Fields))
	copy(params, v.Fields)
	return &Function{Params: params, Value: e.Type()}
}

// SplitVariantName splits a qualified variant reference `N::X::A` into the enum name
// `N::X` and the variant name `A`.
func SplitVariantName(name string) (enum, variant string, ok bool) {
	i := strings.LastIndex(name, "::")
	if i < 0 {
		return "", "", false
	}
	return name[:i], name[i+2:], true
}

// `enum X { A, B(int), C(string[], int) }`
func (e *EnumDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("enum ")
	sb.WriteString(e.Name)
	sb.WriteString(" {")
	for i, v := range e.Variants {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(v.Name)
		if v.Fields != nil {
			sb.WriteByte('(')
			for j, f := range v.Fields {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(f.String())
			}
			sb.WriteByte(')')
		}
	}
	sb.WriteString(" }")
	return sb.String()
}
