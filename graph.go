/*
 * graph.go, part of gobalance.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package balance

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//The compounds and elements of a System form a bipartite graph, where a compound is
//connected to every element it contains. Each connected component of that graph is
//a reaction that can be balanced independently of the rest.

// Graph returns the compound-element graph of the system. Compound i is the node with ID i,
// element j (in the order of S.Elements) is the node with ID Vars()+j.
func (S *System) Graph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	n := S.Vars()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for j, e := range S.Elements {
		el := simple.Node(int64(n + j))
		g.AddNode(el)
		for i, c := range S.compounds {
			if c.Count(e) > 0 {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), el))
			}
		}
	}
	return g
}

// Components returns the variable indexes of each group of compounds that shares
// no element with the other groups. Each group is sorted, and groups are sorted by their first index.
func (S *System) Components() [][]int {
	n := int64(S.Vars())
	var ret [][]int
	for _, cc := range topo.ConnectedComponents(S.Graph()) {
		var group []int
		for _, node := range cc {
			if id := node.ID(); id < n {
				group = append(group, int(id))
			}
		}
		if len(group) == 0 {
			continue
		}
		sort.Ints(group)
		ret = append(ret, group)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
