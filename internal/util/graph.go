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

package util

// Graph is an adjacency list. An edge from a vertex to another vertex means the first
// vertex depends on the second.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly-connected components of the graph in dependency order: every
// component is preceded by the components it depends on. Vertices within a component keep
// their discovery order, and roots are visited in increasing vertex order, so the result
// is deterministic.
func (g Graph) SCC() [][]int {
	state := sccState{
		indexTable: make([]int, len(g)),
		lowLink:    make([]int, len(g)),
		onStack:    make([]bool, len(g)),
	}
	for v := range g {
		if state.indexTable[v] == 0 {
			g.tarjanSCC(&state, v)
		}
	}
	return state.sccs
}

type sccState struct {
	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int
	sccs  [][]int
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// A component is emitted only after every component reachable from it, which is the
// dependency order for this graph's edge direction.
func (g Graph) tarjanSCC(state *sccState, v int) {
	state.index++
	state.indexTable[v] = state.index
	state.lowLink[v] = state.index
	state.stack = append(state.stack, v)
	state.onStack[v] = true

	for _, succ := range g[v] {
		if state.indexTable[succ] == 0 {
			g.tarjanSCC(state, succ)
			state.lowLink[v] = min(state.lowLink[v], state.lowLink[succ])
		} else if state.onStack[succ] {
			state.lowLink[v] = min(state.lowLink[v], state.indexTable[succ])
		}
	}

	if state.lowLink[v] != state.indexTable[v] {
		return
	}
	var (
		c    []int
		succ int
	)
	for {
		succ, state.stack = state.stack[len(state.stack)-1], state.stack[:len(state.stack)-1]
		state.onStack[succ] = false
		c = append(c, succ)
		if succ == v {
			break
		}
	}
	// popped in reverse discovery order:
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	state.sccs = append(state.sccs, c)
}
