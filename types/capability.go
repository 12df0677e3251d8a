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

	"github.com/pkg/errors"
)

// Capability is an operation which any instantiation of a type-variable must support.
// The set of capabilities is closed.
type Capability uint8

// Capabilities are declared in alphabetical order, which is also the printing order.
const (
	Add Capability = iota
	Eq
	FromLiteral
	Mod
	Mul
	Neg
	Ord
	Pow
	Sub
	Sum

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	Add:         "Add",
	Eq:          "Eq",
	FromLiteral: "FromLiteral",
	Mod:         "Mod",
	Mul:         "Mul",
	Neg:         "Neg",
	Ord:         "Ord",
	Pow:         "Pow",
	Sub:         "Sub",
	Sum:         "Sum",
}

func (c Capability) String() string {
	if c < numCapabilities {
		return capabilityNames[c]
	}
	return "Capability(" + strconv.Itoa(int(c)) + ")"
}

// ParseCapability looks up a capability by name.
func ParseCapability(name string) (Capability, error) {
	for c, n := range capabilityNames {
		if n == name {
			return Capability(c), nil
		}
	}
	return 0, errors.Errorf("unknown capability %s", name)
}

// Capabilities is a set of capabilities.
type Capabilities uint16

// NoCapabilities is the empty set.
const NoCapabilities Capabilities = 0

// CapabilitySet creates a set from the given capabilities.
func CapabilitySet(cs ...Capability) Capabilities {
	var s Capabilities
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

func (s Capabilities) Has(c Capability) bool                { return s&(1<<c) != 0 }
func (s Capabilities) With(c Capability) Capabilities       { return s | 1<<c }
func (s Capabilities) Union(other Capabilities) Capabilities { return s | other }
func (s Capabilities) Without(other Capabilities) Capabilities {
	return s &^ other
}
func (s Capabilities) IsEmpty() bool { return s == 0 }

// Contains checks whether every capability of other is in s.
func (s Capabilities) Contains(other Capabilities) bool { return s&other == other }

// List returns the capabilities of s in printing order.
func (s Capabilities) List() []Capability {
	var cs []Capability
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			cs = append(cs, c)
		}
	}
	return cs
}

// `Add + FromLiteral`
func (s Capabilities) String() string {
	var sb strings.Builder
	for i, c := range s.List() {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// implies maps each capability to the set of capabilities it implies. The table is
// fixed; a capability never implies itself.
var implies = [numCapabilities]Capabilities{
	Sum: CapabilitySet(Add),
}

// Implied returns every capability implied (transitively) by the capabilities in s,
// excluding the members of s which are not implied by another member.
func (s Capabilities) Implied() Capabilities {
	var out Capabilities
	frontier := s
	for frontier != 0 {
		var next Capabilities
		for _, c := range frontier.List() {
			next |= implies[c]
		}
		next &^= out
		out |= next
		frontier = next
	}
	return out
}

// Minimize removes capabilities implied by another capability in s.
func (s Capabilities) Minimize() Capabilities { return s &^ s.Implied() }

// Closure adds every capability implied by s.
func (s Capabilities) Closure() Capabilities { return s | s.Implied() }

var (
	numericCapabilities = CapabilitySet(Add, Eq, FromLiteral, Mul, Neg, Pow, Sub, Sum)
	intCapabilities     = numericCapabilities.Union(CapabilitySet(Mod, Ord))
	stringCapabilities  = CapabilitySet(Add, Eq)
	boolCapabilities    = CapabilitySet(Eq)
	arrayCapabilities   = CapabilitySet(Add)
)

// Supported returns the capabilities supported by a type which is not a type-variable.
func Supported(t Type) Capabilities {
	switch t := t.(type) {
	case Primitive:
		switch t {
		case Int:
			return intCapabilities
		case Fe, Expr:
			return numericCapabilities
		case String:
			return stringCapabilities
		case Bool:
			return boolCapabilities
		}
	case *Array:
		return arrayCapabilities
	}
	return NoCapabilities
}
