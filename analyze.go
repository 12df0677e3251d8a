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
	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/internal/util"
)

// Dependency analysis for program symbols, in the manner of Haskell's binding groups:
// https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
//
//   In Haskell 98, a group of bindings is sorted into strongly-connected components, and then type-checked
//   in dependency order. As each dependency group is type-checked, any binders of the group that have an
//   explicit type signature are put in the type environment with the specified polymorphic type, and all
//   others are monomorphic until the group is generalized.
//
// References to symbols with a generic declared type are ignored, since their type is known before their
// definition is checked.
func (c *Checker) dependencyOrder(ids []symbolID) [][]symbolID {
	vertex := make(map[symbolID]int, len(ids))
	for i, id := range ids {
		vertex[id] = i
	}
	g := util.NewGraph(len(ids))
	for i, id := range ids {
		ast.VisitSymbol(c.symbols.slot(id).sym, ast.PreOrder, func(e ast.Expr) ast.Control[struct{}] {
			ref, ok := e.(*ast.Reference)
			if !ok {
				return ast.Continue[struct{}]()
			}
			if dep, ok := c.symbols.lookup(ref.Name); ok && !c.symbols.slot(dep).isGeneric() {
				if j, ok := vertex[dep]; ok {
					g.AddEdge(i, j)
				}
			}
			return ast.Continue[struct{}]()
		})
	}

	sccs := g.SCC()
	groups := make([][]symbolID, len(sccs))
	for i, scc := range sccs {
		groups[i] = make([]symbolID, len(scc))
		for j, v := range scc {
			groups[i][j] = ids[v]
		}
	}
	return groups
}
