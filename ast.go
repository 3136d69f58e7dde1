// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"strings"
	"weak"
)

// NodeKind identifies the shape of one node of a factored expression tree.
type NodeKind int

const (
	VariableNode NodeKind = iota
	ConstantNode
	NotNode
	AndNode
	OrNode
)

func (k NodeKind) String() string {
	switch k {
	case VariableNode:
		return "variable"
	case ConstantNode:
		return "constant"
	case NotNode:
		return "not"
	case AndNode:
		return "and"
	case OrNode:
		return "or"
	}
	return "unknown"
}

// ExprNode is the view of one factored-tree node handed to a Fold callback.
// Which fields are meaningful depends on Kind: Name for VariableNode, Value
// for ConstantNode, Left for NotNode, Left and Right for AndNode and OrNode.
type ExprNode[T any] struct {
	Kind  NodeKind
	Name  string
	Value bool
	Left  T
	Right T
}

// exprAST is the internal factored form. It is immutable once built and
// shared through the manager's weak cache.
type exprAST struct {
	kind  NodeKind
	name  string
	value bool
	left  *exprAST
	right *exprAST
}

func astVar(name string) *exprAST   { return &exprAST{kind: VariableNode, name: name} }
func astConst(v bool) *exprAST      { return &exprAST{kind: ConstantNode, value: v} }
func astNot(x *exprAST) *exprAST    { return &exprAST{kind: NotNode, left: x} }
func astAnd(l, r *exprAST) *exprAST { return &exprAST{kind: AndNode, left: l, right: r} }
func astOr(l, r *exprAST) *exprAST  { return &exprAST{kind: OrNode, left: l, right: r} }

// factoredAST returns the memoized factored form of e, building it from the
// DNF on first use.
func (e *Expr) factoredAST() *exprAST {
	if a := e.ast.Load(); a != nil {
		return a
	}
	e.mgr.mu.RLock()
	wp, ok := e.mgr.astCache[e.root]
	e.mgr.mu.RUnlock()
	if ok {
		if a := wp.Value(); a != nil {
			e.ast.Store(a)
			return a
		}
	}
	a := factorize(e.Dnf().terms)
	e.mgr.mu.Lock()
	e.mgr.astCache[e.root] = weak.Make(a)
	e.mgr.mu.Unlock()
	e.ast.Store(a)
	return a
}

// Fold reduces the factored form of e bottom-up: children are folded first
// and their results appear in the Left/Right fields of the node passed to f.
func Fold[T any](e *Expr, f func(ExprNode[T]) T) T {
	return foldAST(e.factoredAST(), f)
}

func foldAST[T any](a *exprAST, f func(ExprNode[T]) T) T {
	switch a.kind {
	case VariableNode:
		return f(ExprNode[T]{Kind: VariableNode, Name: a.name})
	case ConstantNode:
		return f(ExprNode[T]{Kind: ConstantNode, Value: a.value})
	case NotNode:
		return f(ExprNode[T]{Kind: NotNode, Left: foldAST(a.left, f)})
	case AndNode:
		return f(ExprNode[T]{Kind: AndNode, Left: foldAST(a.left, f), Right: foldAST(a.right, f)})
	case OrNode:
		return f(ExprNode[T]{Kind: OrNode, Left: foldAST(a.left, f), Right: foldAST(a.right, f)})
	}
	panic("espressologic: corrupt expression tree")
}

// FoldWithContext is a top-down variant of Fold: the callback receives the
// node shape, the context flowing down from its parent, and thunks that fold
// each child under a context of the callback's choosing. Leaf nodes never
// invoke the thunks.
func FoldWithContext[C, T any](e *Expr, ctx C, f func(node ExprNode[struct{}], ctx C, left, right func(C) T) T) T {
	return foldCtxAST(e.factoredAST(), ctx, f)
}

func foldCtxAST[C, T any](a *exprAST, ctx C, f func(node ExprNode[struct{}], ctx C, left, right func(C) T) T) T {
	none := func(C) T {
		panic("espressologic: fold descended into a missing child")
	}
	switch a.kind {
	case VariableNode:
		return f(ExprNode[struct{}]{Kind: VariableNode, Name: a.name}, ctx, none, none)
	case ConstantNode:
		return f(ExprNode[struct{}]{Kind: ConstantNode, Value: a.value}, ctx, none, none)
	case NotNode:
		left := func(c C) T { return foldCtxAST(a.left, c, f) }
		return f(ExprNode[struct{}]{Kind: NotNode}, ctx, left, none)
	case AndNode, OrNode:
		left := func(c C) T { return foldCtxAST(a.left, c, f) }
		right := func(c C) T { return foldCtxAST(a.right, c, f) }
		return f(ExprNode[struct{}]{Kind: a.kind}, ctx, left, right)
	}
	panic("espressologic: corrupt expression tree")
}

// Operator context for rendering: which construct encloses the one being
// printed. It decides where parentheses are required.
type renderCtx int

const (
	ctxTop renderCtx = iota
	ctxOr
	ctxAnd
	ctxNot
)

// String renders the factored form of e with the minimum parentheses:
// ~ binds tightest, then *, then +. Constants render as "1" and "0".
func (e *Expr) String() string {
	var sb strings.Builder
	renderAST(&sb, e.factoredAST(), ctxTop)
	return sb.String()
}

func renderAST(sb *strings.Builder, a *exprAST, ctx renderCtx) {
	switch a.kind {
	case VariableNode:
		sb.WriteString(a.name)
	case ConstantNode:
		if a.value {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case NotNode:
		sb.WriteByte('~')
		switch a.left.kind {
		case VariableNode, ConstantNode, NotNode:
			renderAST(sb, a.left, ctxNot)
		default:
			sb.WriteByte('(')
			renderAST(sb, a.left, ctxTop)
			sb.WriteByte(')')
		}
	case AndNode:
		paren := ctx == ctxNot
		if paren {
			sb.WriteByte('(')
		}
		renderAST(sb, a.left, ctxAnd)
		sb.WriteString(" * ")
		renderAST(sb, a.right, ctxAnd)
		if paren {
			sb.WriteByte(')')
		}
	case OrNode:
		paren := ctx == ctxAnd || ctx == ctxNot
		if paren {
			sb.WriteByte('(')
		}
		renderAST(sb, a.left, ctxOr)
		sb.WriteString(" + ")
		renderAST(sb, a.right, ctxOr)
		if paren {
			sb.WriteByte(')')
		}
	}
}
