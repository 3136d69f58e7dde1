// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"sort"
	"sync/atomic"
)

// Expr is a handle on a Boolean function represented as a reduced ordered
// BDD. Handles are small and safe for concurrent use. Because the
// representation is canonical, two handles denote the same function exactly
// when Equal reports true.
//
// An Expr pins the node table it was built against; expressions created
// while any other expression is alive always share that table and can be
// combined freely.
type Expr struct {
	mgr  *manager
	root int

	// per-handle memoization, backed by the manager's weak caches
	dnf atomic.Pointer[Dnf]
	ast atomic.Pointer[exprAST]
}

// Constant returns the constant true or false function.
func Constant(value bool) *Expr {
	root := falseNode
	if value {
		root = trueNode
	}
	return &Expr{mgr: sharedManager(), root: root}
}

// Variable returns the function of a single positive literal. Calling it
// twice with the same name yields equal expressions.
func Variable(name string) *Expr {
	m := sharedManager()
	m.mu.Lock()
	v := m.internVar(name)
	root := m.makenode(v, falseNode, trueNode)
	m.mu.Unlock()
	return &Expr{mgr: m, root: root}
}

func newExpr(m *manager, root int) *Expr {
	return &Expr{mgr: m, root: root}
}

func (e *Expr) checkManager(other *Expr) {
	if e.mgr != other.mgr {
		panic("espressologic: expressions from different manager generations")
	}
}

// And returns the conjunction of e and other.
func (e *Expr) And(other *Expr) *Expr {
	e.checkManager(other)
	return newExpr(e.mgr, e.mgr.ite(e.root, other.root, falseNode))
}

// Or returns the disjunction of e and other.
func (e *Expr) Or(other *Expr) *Expr {
	e.checkManager(other)
	return newExpr(e.mgr, e.mgr.ite(e.root, trueNode, other.root))
}

// Not returns the negation of e.
func (e *Expr) Not() *Expr {
	return newExpr(e.mgr, e.mgr.ite(e.root, falseNode, trueNode))
}

// IsTrue reports whether e is the constant true function.
func (e *Expr) IsTrue() bool { return e.root == trueNode }

// IsFalse reports whether e is the constant false function.
func (e *Expr) IsFalse() bool { return e.root == falseNode }

// IsConstant reports whether e is one of the two constant functions.
func (e *Expr) IsConstant() bool { return isTerminal(e.root) }

// Equal reports whether e and other denote the same Boolean function. By
// canonicity this is a pointer-and-id comparison, never a traversal.
func (e *Expr) Equal(other *Expr) bool {
	return e.mgr == other.mgr && e.root == other.root
}

// Evaluate computes the value of e under the given assignment. Variables
// absent from the assignment read as false.
func (e *Expr) Evaluate(assignment map[string]bool) bool {
	id := e.root
	for !isTerminal(id) {
		n := e.mgr.node(id)
		if assignment[e.mgr.varName(n.varid)] {
			id = n.high
		} else {
			id = n.low
		}
	}
	return id == trueNode
}

// NodeCount returns the number of distinct BDD nodes reachable from e,
// terminals included.
func (e *Expr) NodeCount() int {
	seen := map[int]struct{}{e.root: {}}
	stack := []int{e.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isTerminal(id) {
			continue
		}
		n := e.mgr.node(id)
		for _, kid := range [2]int{n.low, n.high} {
			if _, ok := seen[kid]; !ok {
				seen[kid] = struct{}{}
				stack = append(stack, kid)
			}
		}
	}
	return len(seen)
}

// Variables returns the names of the variables e depends on, sorted.
func (e *Expr) Variables() []string {
	ids := e.supportIDs()
	names := make([]string, 0, len(ids))
	for id := range ids {
		names = append(names, e.mgr.varName(id))
	}
	sort.Strings(names)
	return names
}

// VarCount returns the number of variables e depends on.
func (e *Expr) VarCount() int { return len(e.supportIDs()) }

func (e *Expr) supportIDs() map[int]struct{} {
	vars := make(map[int]struct{})
	seen := map[int]struct{}{e.root: {}}
	stack := []int{e.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isTerminal(id) {
			continue
		}
		n := e.mgr.node(id)
		vars[n.varid] = struct{}{}
		for _, kid := range [2]int{n.low, n.high} {
			if _, ok := seen[kid]; !ok {
				seen[kid] = struct{}{}
				stack = append(stack, kid)
			}
		}
	}
	return vars
}
