// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

// ite computes if-then-else(f, g, h) = (f AND g) OR (NOT f AND h) and returns
// the root id of the result. Every connective of the package reduces to it.
//
// The recursion releases the read lock before descending so that concurrent
// callers make progress; two goroutines racing on the same triple may both
// compute it, but hash consing makes them converge on the same id.
func (m *manager) ite(f, g, h int) int {
	switch {
	case f == trueNode:
		return g
	case f == falseNode:
		return h
	case g == trueNode && h == falseNode:
		return f
	case g == h:
		return g
	}
	key := iteKey{f, g, h}
	m.mu.RLock()
	if res, ok := m.iteCache[key]; ok {
		m.mu.RUnlock()
		return res
	}
	fn, gn, hn := m.nodeLocked(f), m.nodeLocked(g), m.nodeLocked(h)
	m.mu.RUnlock()

	top := min3(fn.varid, gn.varid, hn.varid)
	if top == terminalVar {
		// all three terminal is impossible past the short-circuits
		panic("espressologic: ite descended into three terminals")
	}
	fl, fh := cofactor(fn, top, f)
	gl, gh := cofactor(gn, top, g)
	hl, hh := cofactor(hn, top, h)
	low := m.ite(fl, gl, hl)
	high := m.ite(fh, gh, hh)

	m.mu.Lock()
	res := m.makenode(top, low, high)
	m.iteCache[key] = res
	m.mu.Unlock()
	return res
}

// cofactor returns the (low, high) restriction of node n (with id) on the
// variable top. A node above top is independent of it, so both branches are
// the node itself.
func cofactor(n bddNode, top, id int) (int, int) {
	if n.varid == top {
		return n.low, n.high
	}
	return id, id
}

func min3(x, y, z int) int {
	if y < x {
		x = y
	}
	if z < x {
		x = z
	}
	return x
}
