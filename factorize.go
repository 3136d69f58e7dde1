// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"maps"
	"sort"
	"weak"
)

// factorize turns a sum of products into a compact multi-level tree by
// greedily pulling out the literal shared by the most terms. Terms that
// contain the chosen literal are factored recursively with the literal
// removed; the remainder is factored independently and placed first in the
// resulting disjunction. Literals shared by fewer than two terms are not
// worth extracting, so such term lists render as a plain sum.
func factorize(terms []map[string]bool) *exprAST {
	switch len(terms) {
	case 0:
		return astConst(false)
	case 1:
		return termAST(terms[0])
	}
	name, polarity, ok := bestLiteral(terms)
	if !ok {
		sum := termAST(terms[0])
		for _, t := range terms[1:] {
			sum = astOr(sum, termAST(t))
		}
		return sum
	}
	with, without := splitOnLiteral(terms, name, polarity)
	lit := astVar(name)
	if !polarity {
		lit = astNot(lit)
	}
	factored := astAnd(lit, factorize(with))
	if len(without) == 0 {
		return factored
	}
	return astOr(factorize(without), factored)
}

// termAST renders a single product term as a left-nested conjunction of its
// literals in variable order. The empty term is the constant true.
func termAST(term map[string]bool) *exprAST {
	if len(term) == 0 {
		return astConst(true)
	}
	names := make([]string, 0, len(term))
	for name := range term {
		names = append(names, name)
	}
	sort.Strings(names)
	var product *exprAST
	for _, name := range names {
		lit := astVar(name)
		if !term[name] {
			lit = astNot(lit)
		}
		if product == nil {
			product = lit
		} else {
			product = astAnd(product, lit)
		}
	}
	return product
}

type literal struct {
	name     string
	polarity bool
}

// bestLiteral finds the literal occurring in the most terms, requiring at
// least two occurrences. Ties on the count are broken towards the
// lexicographically later variable name; for the two polarities of one
// variable the negative literal wins a tie.
func bestLiteral(terms []map[string]bool) (string, bool, bool) {
	counts := make(map[literal]int)
	for _, t := range terms {
		for name, polarity := range t {
			counts[literal{name, polarity}]++
		}
	}
	candidates := make([]literal, 0, len(counts))
	for lit := range counts {
		candidates = append(candidates, lit)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].name != candidates[j].name {
			return candidates[i].name < candidates[j].name
		}
		return !candidates[i].polarity && candidates[j].polarity
	})
	var best literal
	bestCount := 1
	found := false
	for _, lit := range candidates {
		c := counts[lit]
		if c > bestCount || (c == bestCount && found && lit.name > best.name) {
			best, bestCount, found = lit, c, true
		}
	}
	return best.name, best.polarity, found
}

// splitOnLiteral partitions terms on the chosen literal. Terms carrying it
// are copied with the literal deleted; the rest pass through unchanged.
func splitOnLiteral(terms []map[string]bool, name string, polarity bool) (with, without []map[string]bool) {
	for _, t := range terms {
		if p, ok := t[name]; ok && p == polarity {
			reduced := maps.Clone(t)
			delete(reduced, name)
			with = append(with, reduced)
		} else {
			without = append(without, t)
		}
	}
	return with, without
}

// exprFromTerms rebuilds an expression from a sum of products, seeding the
// factored form on the handle and in the manager cache so that any handle
// with the same root reuses it.
func exprFromTerms(terms []map[string]bool) *Expr {
	a := factorize(terms)
	e := astToExpr(a)
	e.ast.Store(a)
	e.mgr.mu.Lock()
	e.mgr.astCache[e.root] = weak.Make(a)
	e.mgr.mu.Unlock()
	return e
}

func astToExpr(a *exprAST) *Expr {
	switch a.kind {
	case VariableNode:
		return Variable(a.name)
	case ConstantNode:
		return Constant(a.value)
	case NotNode:
		return astToExpr(a.left).Not()
	case AndNode:
		return astToExpr(a.left).And(astToExpr(a.right))
	case OrNode:
		return astToExpr(a.left).Or(astToExpr(a.right))
	}
	panic("espressologic: corrupt expression tree")
}
