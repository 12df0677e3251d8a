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

package ast

type IdentityKind uint8

const (
	// Polynomial identities store the constrained expression as the selector of the left side
	// and leave the right side empty.
	Polynomial IdentityKind = iota
	Plookup
	Permutation
	Connect
)

var identityKinds = [...]string{
	Polynomial:  "Polynomial",
	Plookup:     "Plookup",
	Permutation: "Permutation",
	Connect:     "Connect",
}

func (k IdentityKind) String() string {
	if int(k) < len(identityKinds) {
		return identityKinds[k]
	}
	return "?"
}

// SelectedExpressions is one side of an identity: `sel { a, b }`
type SelectedExpressions struct {
	// Selector is nil when the side is not guarded.
	Selector    Expr
	Expressions []Expr
}

// Identity is a constraint relating two sides: `{ a + 1 } in {BYTE}`
type Identity struct {
	Kind  IdentityKind
	Left  SelectedExpressions
	Right SelectedExpressions
}

// NewPolynomialIdentity creates the identity `expr = 0`.
func NewPolynomialIdentity(expr Expr) *Identity {
	return &Identity{Kind: Polynomial, Left: SelectedExpressions{Selector: expr}}
}
