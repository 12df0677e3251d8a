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

package pilcheck

import (
	"fmt"

	"github.com/wdamron/pilcheck/internal/typeutil"
	"github.com/wdamron/pilcheck/types"
)

type (
	// UnifyError is returned when two types cannot be made equal, including when a type-variable
	// would have to contain itself.
	UnifyError = typeutil.UnifyError
	// CapabilityError is returned when a type does not support a required capability.
	CapabilityError = typeutil.CapabilityError
	// ArityError is returned when two function types have different numbers of parameters.
	ArityError = typeutil.ArityError
)

// NonConcreteError is returned when the type of a literal, or the type arguments of a reference to
// a generic symbol, still contain type-variables after checking.
type NonConcreteError struct {
	// Site is `literal 3` or `reference to generic symbol std::array::len`.
	Site string
}

func (e *NonConcreteError) Error() string { return "Unable to derive concrete type for " + e.Site }

// ConcreteSymbolError is returned when the type of a symbol without declared type still contains
// type-variables after checking.
type ConcreteSymbolError struct {
	Name     string
	Inferred *types.TypeScheme
}

func (e *ConcreteSymbolError) Error() string {
	return "Could not derive a concrete type for symbol " + e.Name +
		".\nInferred type scheme: " + types.FormatSchemeAroundName(e.Name, e.Inferred) + "\n"
}

// SchemeMismatchError is returned when the capabilities a generic symbol requires of its type
// parameters differ from the declared bounds.
type SchemeMismatchError struct {
	Name     string
	Declared *types.TypeScheme
	Inferred *types.TypeScheme
}

func (e *SchemeMismatchError) Error() string {
	return "Inferred type scheme for symbol " + e.Name + " does not match the declared type scheme:\n" +
		"Declared: let" + types.FormatSchemeAroundName(e.Name, e.Declared) + "\n" +
		"Inferred: let" + types.FormatSchemeAroundName(e.Name, e.Inferred) + "\n"
}

// ValueExpectedError is returned when the name of an enum is used as a value.
type ValueExpectedError struct {
	Name string
}

func (e *ValueExpectedError) Error() string { return "Expected value but got type: " + e.Name }

// ColumnTypeError is returned when the value of a column is neither a function from int to fe
// nor a function from int to int.
type ColumnTypeError struct {
	Inferred types.Type
	// Err is the failure to unify with `int -> fe`.
	Err error
}

func (e *ColumnTypeError) Error() string {
	return "Expected either int -> int or int -> fe, but got: " + types.TypeString(e.Inferred) + ".\n" + e.Err.Error()
}

func (e *ColumnTypeError) Cause() error  { return e.Err }
func (e *ColumnTypeError) Unwrap() error { return e.Err }

// SubExpressionError is returned when the type of a sub-expression differs from the type required
// by its context.
type SubExpressionError struct {
	Expr     string
	Expected types.Type
	Inferred types.Type
	Err      error
}

func (e *SubExpressionError) Error() string {
	return "Error checking sub-expression " + e.Expr + ":\nExpected type: " + types.TypeString(e.Expected) +
		"\nInferred type: " + types.TypeString(e.Inferred) + "\n" + e.Err.Error()
}

func (e *SubExpressionError) Cause() error  { return e.Err }
func (e *SubExpressionError) Unwrap() error { return e.Err }

// SymbolError is returned when the definition of a symbol fails to check.
type SymbolError struct {
	Name string
	// Definition is the printed definition of the symbol: `x = (|i| i)`
	Definition string
	Err        error
}

func (e *SymbolError) Error() string {
	return "Error type checking the symbol " + e.Definition + ":\n" + e.Err.Error()
}

func (e *SymbolError) Cause() error  { return e.Err }
func (e *SymbolError) Unwrap() error { return e.Err }

// IdentityError is returned when a selector or expression of an identity is not an expression
// of type expr.
type IdentityError struct {
	Identity string
	Err      error
}

func (e *IdentityError) Error() string {
	return "Error checking identity " + e.Identity + ":\n" + e.Err.Error()
}

func (e *IdentityError) Cause() error  { return e.Err }
func (e *IdentityError) Unwrap() error { return e.Err }

// UsageError is returned for invalid input, such as unknown or duplicate names, and for queries
// of symbols which have not been checked.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}
