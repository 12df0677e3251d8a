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

// pilcheck provides type-checking for a polynomial-identity language: symbols, columns, identities
// and enums, with generic functions bounded by capabilities.
//
// The type-system is Hindley-Milner with declared type schemes. Type-variables of a scheme may be
// bounded by capabilities (`<T: Add + FromLiteral>`), which restrict the types they may be
// instantiated with. Number literals are polymorphic over every type with the FromLiteral
// capability.
//
//
// Checking Phases:
//
//   * Symbols without declared type-variables are checked together, in dependency order, then the
//     identities; every literal and every reference to a generic symbol must end up with a
//     concrete type
//   * Each generic symbol is checked in isolation against its declared scheme, with its
//     type-variables held rigid; the capabilities its body requires must equal the declared bounds
//   * Literals and references to generic symbols are annotated with their types
//
//
// Supported Features:
//
//   * Capability bounds with implication (Sum implies Add)
//   * Canonical type schemes (`<T1, T2: Add> T1, T2 -> T2`)
//   * Enums with field-less variants (values) and variants with fields (constructors)
//   * Match expressions over number, string, tuple, array and enum patterns
//   * A bottom type (`!`) for expressions which never produce a value
//   * Columns (`col`, `col[n]`) which are referenced as expressions (`expr`, `expr[n]`)
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Relaxed dependency analysis: https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
package pilcheck
