// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"iter"
	"maps"
	"sort"
	"weak"
)

// Dnf is a sum of products extracted from an expression's BDD. Each term
// maps a variable name to its polarity; variables absent from a term are
// don't-cares. A Dnf with no terms is the constant false; a term with no
// literals is the constant true.
//
// Dnf values are immutable once built and shared between expressions with
// the same root, so callers must not modify the returned terms.
type Dnf struct {
	terms []map[string]bool
	vars  []string
}

// Dnf returns the disjunctive normal form of e. The result is memoized on
// the handle and weakly cached on the manager, keyed by root id, so repeated
// calls on equal expressions return the same value.
func (e *Expr) Dnf() *Dnf {
	if d := e.dnf.Load(); d != nil {
		return d
	}
	e.mgr.mu.RLock()
	wp, ok := e.mgr.dnfCache[e.root]
	e.mgr.mu.RUnlock()
	if ok {
		if d := wp.Value(); d != nil {
			e.dnf.Store(d)
			return d
		}
	}
	d := newDnf(e.enumerateTerms())
	e.mgr.mu.Lock()
	e.mgr.dnfCache[e.root] = weak.Make(d)
	e.mgr.mu.Unlock()
	e.dnf.Store(d)
	return d
}

// enumerateTerms walks every root-to-true path, low branch before high, and
// records the literals fixed along the way.
func (e *Expr) enumerateTerms() []map[string]bool {
	var terms []map[string]bool
	path := make(map[string]bool)
	var walk func(id int)
	walk = func(id int) {
		switch id {
		case falseNode:
			return
		case trueNode:
			terms = append(terms, maps.Clone(path))
			return
		}
		n := e.mgr.node(id)
		name := e.mgr.varName(n.varid)
		path[name] = false
		walk(n.low)
		path[name] = true
		walk(n.high)
		delete(path, name)
	}
	walk(e.root)
	return terms
}

func newDnf(terms []map[string]bool) *Dnf {
	seen := make(map[string]struct{})
	for _, t := range terms {
		for name := range t {
			seen[name] = struct{}{}
		}
	}
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return &Dnf{terms: terms, vars: vars}
}

// Len returns the number of product terms.
func (d *Dnf) Len() int { return len(d.terms) }

// IsEmpty reports whether d has no terms, that is, denotes false.
func (d *Dnf) IsEmpty() bool { return len(d.terms) == 0 }

// Variables returns the names appearing in any term, sorted.
func (d *Dnf) Variables() []string { return d.vars }

// Terms iterates over the product terms in extraction order. The yielded
// maps are shared and must not be modified.
func (d *Dnf) Terms() iter.Seq[map[string]bool] {
	return func(yield func(map[string]bool) bool) {
		for _, t := range d.terms {
			if !yield(t) {
				return
			}
		}
	}
}
