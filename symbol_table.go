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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/types"
)

// Stable index of a symbol within its symbol table.
type symbolID int

type slotState uint8

const (
	pending slotState = iota
	inProgress
	done
)

type symbolSlot struct {
	name string
	// nil for builtins
	sym *ast.Symbol
	// declared (or builtin) type scheme, nil when the type is inferred
	declared *types.TypeScheme
	// type of a symbol without type-variables while checking: the declared type, or a
	// placeholder type-variable
	mono   types.Type
	state  slotState
	scheme *types.TypeScheme
}

func (s *symbolSlot) isGeneric() bool { return s.declared != nil && s.declared.IsGeneric() }

func (s *symbolSlot) isBuiltin() bool { return s.sym == nil }

// symbolTable is an arena of symbol slots with a sorted index by name. Slots must not be added
// once checking has started.
type symbolTable struct {
	slots []symbolSlot
	index *immutable.SortedMap
}

func newSymbolTable() symbolTable {
	return symbolTable{index: immutable.NewSortedMap(nil)}
}

// Add a slot. It returns false if a slot with the same name exists.
func (st *symbolTable) add(slot symbolSlot) (symbolID, bool) {
	if id, exists := st.lookup(slot.name); exists {
		return id, false
	}
	id := symbolID(len(st.slots))
	st.slots = append(st.slots, slot)
	st.index = st.index.Set(slot.name, id)
	return id, true
}

func (st *symbolTable) lookup(name string) (symbolID, bool) {
	id, ok := st.index.Get(name)
	if !ok {
		return -1, false
	}
	return id.(symbolID), true
}

func (st *symbolTable) slot(id symbolID) *symbolSlot { return &st.slots[id] }

// Store the final type scheme of a symbol. A scheme is written once.
func (st *symbolTable) finish(id symbolID, ts *types.TypeScheme) {
	slot := &st.slots[id]
	if slot.state == done {
		panic("type scheme of symbol " + slot.name + " is already stored")
	}
	slot.scheme, slot.state = ts, done
}

// Range iterates over slots in order of name.
// If f returns false, iteration will be stopped.
func (st *symbolTable) Range(f func(string, *symbolSlot) bool) {
	iter := st.index.Iterator()
	for !iter.Done() {
		name, id := iter.Next()
		if !f(name.(string), st.slot(id.(symbolID))) {
			return
		}
	}
}
