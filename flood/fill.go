// SPDX-License-Identifier: MIT

package flood

// Fill grows a region breadth first from start. start is visited
// unconditionally (the caller has already claimed it); every neighbour v of
// a visited cell for which claim(v) returns true is visited and queued.
// claim is called at most once per (cell, neighbour) pair and must mark v so
// that later calls for the same v return false; this keeps each cell visited
// at most once. Returns the number of visited cells.
//
// Time: O(R·d·D) for a region of R cells. Memory: O(R) for the queue.
func (g *Grid) Fill(start int, claim func(pos int) bool, visit func(pos int)) int {
	queue := []int{start}
	visit(start)
	var nbrs []int
	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.Neighbours(queue[qi], nbrs)
		for _, v := range nbrs {
			if claim(v) {
				visit(v)
				queue = append(queue, v)
			}
		}
	}
	return len(queue)
}

// Components finds every connected region of cells for which member
// returns true. Each component lists flat positions in BFS order; the
// components are ordered by their smallest position.
//
// Time: O(N·d·D). Memory: O(N) for visited flags and output.
func (g *Grid) Components(member func(pos int) bool) [][]int {
	total := g.Size()
	seen := make([]bool, total)
	var comps [][]int
	for p := 0; p < total; p++ {
		if seen[p] || !member(p) {
			continue
		}
		seen[p] = true
		var comp []int
		g.Fill(p, func(v int) bool {
			if seen[v] || !member(v) {
				return false
			}
			seen[v] = true
			return true
		}, func(v int) { comp = append(comp, v) })
		comps = append(comps, comp)
	}
	return comps
}

// Label returns per-cell component labels (0 for non-members, 1..n for
// members) and the component count n.
func (g *Grid) Label(member func(pos int) bool) ([]int, int) {
	labels := make([]int, g.Size())
	comps := g.Components(member)
	for i, comp := range comps {
		for _, p := range comp {
			labels[p] = i + 1
		}
	}
	return labels, len(comps)
}
