// seehuhn.de/go/fontc - compile font sources into OpenType/CFF fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dijkstra finds shortest paths in graphs whose vertices are the
// integers 0, 1, ..., n and whose edges always point from a smaller to a
// larger vertex.
//
// Such graphs arise when a sequence of n items is split into consecutive
// groups, for example when drawing commands are combined into charstring
// operators: vertex i means that the first i items have been processed.
package dijkstra

import "errors"

// ShortestPath implements Dijkstra's algorithm
// https://en.wikipedia.org/wiki/Dijkstra%27s_algorithm
//
//	vertices: 0, 1, ..., n, start at 0, end at n
//	edges: (k, l) with 0 <= k < l <= n
//
// The function cost(k, l) returns the length of the edge from k to l, and
// false if there is no such edge.  Edge lengths must be non-negative.
// The return values are the total length of the path and the list of
// vertices visited, starting with 0 and ending with n.
func ShortestPath(cost func(k, l int) (int, bool), n int) (int, []int, error) {
	// dist[i] is the length of the shortest known path from i to n.
	dist := make([]int, n+1)
	to := make([]int, n+1)
	known := make([]bool, n+1)
	done := make([]bool, n+1)
	known[n] = true

	for {
		pos := -1
		for i := n; i >= 0; i-- {
			if known[i] && !done[i] && (pos < 0 || dist[i] < dist[pos]) {
				pos = i
			}
		}
		if pos < 0 {
			return 0, nil, ErrNoPath
		}
		done[pos] = true
		if pos == 0 {
			break
		}

		for i := 0; i < pos; i++ {
			if done[i] {
				continue
			}
			c, ok := cost(i, pos)
			if !ok {
				continue
			}
			alt := dist[pos] + c
			if !known[i] || alt < dist[i] {
				dist[i] = alt
				to[i] = pos
				known[i] = true
			}
		}
	}

	res := []int{0}
	pos := 0
	for pos < n {
		pos = to[pos]
		res = append(res, pos)
	}
	return dist[0], res, nil
}

// ErrNoPath is returned by ShortestPath if vertex n cannot be reached
// from vertex 0.
var ErrNoPath = errors.New("no path")
