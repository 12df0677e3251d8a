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
	"unicode"

	"github.com/pkg/errors"
)

// ParseType parses the textual form of a type, as produced by TypeString. Identifiers
// which are not elementary type names are parsed as enum references.
func ParseType(src string) (Type, error) {
	return parseTypeWithVars(src, nil)
}

// ParseTypeScheme parses a type scheme from its variable list (`T1: FromLiteral + Sum, T2`)
// and its type (`T1 -> T2[]`). Quantified variables are numbered 1..n in declaration order
// and keep their declared names.
func ParseTypeScheme(vars, ty string) (*TypeScheme, error) {
	ts := &TypeScheme{}
	byName := make(map[string]*Var)
	vars = strings.TrimSpace(vars)
	if vars != "" {
		for _, decl := range strings.Split(vars, ",") {
			name, bounds, hasBounds := strings.Cut(decl, ":")
			name = strings.TrimSpace(name)
			if !isIdent(name) {
				return nil, errors.Errorf("invalid type-variable name %q", name)
			}
			if _, exists := byName[name]; exists {
				return nil, errors.Errorf("duplicate type-variable %s", name)
			}
			sv := SchemeVar{Var: NewNamedVar(len(ts.Vars)+1, name)}
			if hasBounds {
				for _, b := range strings.Split(bounds, "+") {
					c, err := ParseCapability(strings.TrimSpace(b))
					if err != nil {
						return nil, errors.Wrapf(err, "bounds of type-variable %s", name)
					}
					sv.Bounds = sv.Bounds.With(c)
				}
			}
			byName[name] = sv.Var
			ts.Vars = append(ts.Vars, sv)
		}
	}
	t, err := parseTypeWithVars(ty, byName)
	if err != nil {
		return nil, err
	}
	ts.Type = t
	return ts, nil
}

func parseTypeWithVars(src string, vars map[string]*Var) (Type, error) {
	p := &typeParser{src: src, vars: vars}
	p.next()
	t, list, err := p.parseFull()
	if err != nil {
		return nil, err
	}
	if list != nil {
		return nil, errors.Errorf("unexpected list of types in %q", src)
	}
	if p.tok != "" {
		return nil, errors.Errorf("unexpected %q in %q", p.tok, src)
	}
	return t, nil
}

type typeParser struct {
	src  string
	pos  int
	tok  string
	vars map[string]*Var
}

func isIdentRune(r byte) bool {
	return r == '_' || r == ':' || r < unicode.MaxASCII && (unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r)))
}

func isIdent(s string) bool {
	if s == "" || unicode.IsDigit(rune(s[0])) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentRune(s[i]) {
			return false
		}
	}
	return true
}

// Advance to the next token. The empty token marks the end of input.
func (p *typeParser) next() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos >= len(p.src) {
		p.tok = ""
		return
	}
	start := p.pos
	switch c := p.src[p.pos]; {
	case c == '-' && strings.HasPrefix(p.src[p.pos:], "->"):
		p.pos += 2
	case isIdentRune(c):
		for p.pos < len(p.src) && isIdentRune(p.src[p.pos]) {
			p.pos++
		}
	default:
		p.pos++
	}
	p.tok = p.src[start:p.pos]
}

func (p *typeParser) expect(tok string) error {
	if p.tok != tok {
		return errors.Errorf("expected %q but got %q in %q", tok, p.tok, p.src)
	}
	p.next()
	return nil
}

// parseFull parses a single type or a function type. A comma-separated list of types which
// is not followed by an arrow is returned as list.
func (p *typeParser) parseFull() (t Type, list []Type, err error) {
	if p.tok == "->" {
		p.next()
		value, _, err := p.parseValue()
		if err != nil {
			return nil, nil, err
		}
		return &Function{Value: value}, nil, nil
	}
	first, err := p.parsePostfix()
	if err != nil {
		return nil, nil, err
	}
	items := []Type{first}
	for p.tok == "," {
		p.next()
		item, err := p.parsePostfix()
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	if p.tok == "->" {
		p.next()
		value, _, err := p.parseValue()
		if err != nil {
			return nil, nil, err
		}
		return &Function{Params: items, Value: value}, nil, nil
	}
	if len(items) == 1 {
		return first, nil, nil
	}
	return nil, items, nil
}

func (p *typeParser) parseValue() (Type, []Type, error) {
	t, list, err := p.parseFull()
	if err == nil && list != nil {
		err = errors.Errorf("unexpected list of types after -> in %q", p.src)
	}
	return t, nil, err
}

func (p *typeParser) parsePostfix() (Type, error) {
	t, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.tok == "[" {
		p.next()
		arr := &Array{Base: t}
		if p.tok != "]" {
			n, err := strconv.ParseUint(p.tok, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid array length %q", p.tok)
			}
			arr.Length, arr.Sized = n, true
			p.next()
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		t = arr
	}
	return t, nil
}

func (p *typeParser) parsePrimary() (Type, error) {
	switch tok := p.tok; {
	case tok == "(":
		p.next()
		if p.tok == ")" {
			p.next()
			return &Tuple{}, nil
		}
		t, list, err := p.parseFull()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		if list != nil {
			return &Tuple{Items: list}, nil
		}
		return t, nil

	case tok == "!":
		p.next()
		return Bottom, nil

	case isIdent(tok):
		p.next()
		if tv, ok := p.vars[tok]; ok {
			return tv, nil
		}
		for prim, name := range primitiveNames {
			if name == tok {
				return Primitive(prim), nil
			}
		}
		return &Named{Name: tok}, nil

	case tok == "":
		return nil, errors.Errorf("unexpected end of type %q", p.src)
	}
	return nil, errors.Errorf("unexpected %q in %q", p.tok, p.src)
}
