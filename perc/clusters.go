// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

// joinOpen builds the pore adjacency lists restricted to open throats.
// Closed throats contribute nothing; self-connections are ignored and
// parallel throats are harmless.
func (o *OP) joinOpen() {
	for p := range o.adj {
		o.adj[p] = o.adj[p][:0]
	}
	for t, open := range o.open {
		if !open {
			continue
		}
		p0, p1 := o.Net.ThroatPores(t)
		if p0 == p1 {
			continue
		}
		o.adj[p0] = append(o.adj[p0], p1)
		o.adj[p1] = append(o.adj[p1], p0)
	}
}

// components labels the connected components of the graph given by the
// adjacency lists adj. Labels are written into labels and run from 1 to nc;
// thus 0 never appears and remains available as a "no cluster" sentinel.
// A pore without open throats forms a singleton component with its own label.
// Two pores share a label if and only if a path of open throats joins them.
func components(adj [][]int, labels []int) (nc int) {
	for i := range labels {
		labels[i] = 0
	}
	var queue []int
	for s := range adj {
		if labels[s] != 0 {
			continue
		}

		// breadth-first traversal from s
		nc++
		labels[s] = nc
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, q := range adj[p] {
				if labels[q] == 0 {
					labels[q] = nc
					queue = append(queue, q)
				}
			}
		}
	}
	return
}
