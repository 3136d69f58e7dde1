// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"fmt"
	"sync"
	"weak"
)

// The two constant functions occupy fixed slots in every manager. All other
// ids denote decision nodes.
const (
	falseNode = 0
	trueNode  = 1
)

// terminalVar sorts after every real variable id so that terminals never win
// the top-variable comparison during Shannon expansion.
const terminalVar = int(^uint(0) >> 1)

// bddNode is one vertex in the shared node arena. Terminal nodes carry
// terminalVar as their variable id; their truth value is their id.
type bddNode struct {
	varid int
	low   int
	high  int
}

func isTerminal(id int) bool { return id < 2 }

type nodeKey struct{ varid, low, high int }

type iteKey struct{ f, g, h int }

// manager is the process-wide table of BDD nodes shared by every expression.
//
// Node ids are stable: nodes is append-only and entries are never reordered,
// reassigned or reclaimed for the lifetime of the manager. This is what makes
// it sound for traversals to copy a node out under the read lock, release the
// lock, and keep recursing on plain ids.
type manager struct {
	mu          sync.RWMutex
	nodes       []bddNode
	uniqueTable map[nodeKey]int // hash consing: (var, low, high) -> id
	varIndex    map[string]int
	varNames    []string
	iteCache    map[iteKey]int
	dnfCache    map[int]weak.Pointer[Dnf]
	astCache    map[int]weak.Pointer[exprAST]
}

// registry holds a weak reference to the current manager generation. While
// any expression (or cached DNF/AST) is alive it keeps the manager alive;
// once everything is collected a fresh manager is built on the next request.
// Node ids from a dead generation must never meet a new one, which cannot
// happen here because a live handle pins its own generation.
var registry struct {
	sync.Mutex
	mgr weak.Pointer[manager]
}

func sharedManager() *manager {
	registry.Lock()
	defer registry.Unlock()
	if m := registry.mgr.Value(); m != nil {
		return m
	}
	m := &manager{
		nodes: []bddNode{
			{varid: terminalVar}, // falseNode
			{varid: terminalVar}, // trueNode
		},
		uniqueTable: make(map[nodeKey]int),
		varIndex:    make(map[string]int),
		iteCache:    make(map[iteKey]int),
		dnfCache:    make(map[int]weak.Pointer[Dnf]),
		astCache:    make(map[int]weak.Pointer[exprAST]),
	}
	registry.mgr = weak.Make(m)
	return m
}

// internVar returns the variable id for name, assigning the next id on first
// encounter. The caller must hold the write lock.
func (m *manager) internVar(name string) int {
	if id, ok := m.varIndex[name]; ok {
		return id
	}
	id := len(m.varNames)
	m.varIndex[name] = id
	m.varNames = append(m.varNames, name)
	return id
}

// makenode returns the unique decision node (varid, low, high), applying the
// reduction rule first. It never creates terminals. The caller must hold the
// write lock.
func (m *manager) makenode(varid, low, high int) int {
	if low == high {
		return low
	}
	key := nodeKey{varid, low, high}
	if id, ok := m.uniqueTable[key]; ok {
		return id
	}
	id := len(m.nodes)
	m.nodes = append(m.nodes, bddNode{varid: varid, low: low, high: high})
	m.uniqueTable[key] = id
	return id
}

// node copies the node with the given id out of the arena. The copy can be
// used after the lock is gone because ids are stable.
func (m *manager) node(id int) bddNode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nodeLocked(id)
}

func (m *manager) nodeLocked(id int) bddNode {
	if id < 0 || id >= len(m.nodes) {
		panic(fmt.Sprintf("espressologic: dangling node id %d", id))
	}
	return m.nodes[id]
}

func (m *manager) varName(id int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 0 || id >= len(m.varNames) {
		panic(fmt.Sprintf("espressologic: dangling variable id %d", id))
	}
	return m.varNames[id]
}
