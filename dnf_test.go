// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDnfBasics(t *testing.T) {
	a := Variable("a")
	b := Variable("b")

	d := a.And(b).Dnf()
	require.Equal(t, 1, d.Len())
	assert.Equal(t, []string{"a", "b"}, d.Variables())
	for term := range d.Terms() {
		assert.Equal(t, map[string]bool{"a": true, "b": true}, term)
	}
}

func TestDnfConstants(t *testing.T) {
	fls := Constant(false).Dnf()
	assert.True(t, fls.IsEmpty())
	assert.Equal(t, 0, fls.Len())

	tru := Constant(true).Dnf()
	require.Equal(t, 1, tru.Len())
	for term := range tru.Terms() {
		assert.Empty(t, term)
	}
}

func TestDnfXor(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	xor := a.And(b.Not()).Or(a.Not().And(b))

	d := xor.Dnf()
	require.Equal(t, 2, d.Len())
	want := []map[string]bool{
		{"a": false, "b": true},
		{"a": true, "b": false},
	}
	i := 0
	for term := range d.Terms() {
		assert.Equal(t, want[i], term)
		i++
	}
}

// BDD paths are disjoint, so the consensus term of ab + ~ac never shows up.
func TestDnfDisjointPaths(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	c := Variable("c")
	e := a.And(b).Or(a.Not().And(c))

	d := e.Dnf()
	assert.Equal(t, 2, d.Len())
	for term := range d.Terms() {
		_, hasA := term["a"]
		assert.True(t, hasA)
	}
}

// ab + ~ac + bc: canonicity absorbs the redundant bc term before extraction.
func TestDnfConsensus(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	c := Variable("c")
	e := a.And(b).Or(a.Not().And(c)).Or(b.And(c))

	assert.Equal(t, 2, e.Dnf().Len())
	assert.True(t, e.Equal(a.And(b).Or(a.Not().And(c))))
}

func TestDnfCached(t *testing.T) {
	a := Variable("a")
	b := Variable("b")

	e1 := a.Or(b)
	e2 := b.Or(a)
	require.True(t, e1.Equal(e2))
	// equal expressions share one Dnf value through the manager cache
	assert.Same(t, e1.Dnf(), e2.Dnf())
	assert.Same(t, e1.Dnf(), e1.Dnf())
}

func TestDnfEvaluatesBack(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	c := Variable("c")
	e := a.And(b).Or(b.Not().And(c))

	rebuilt := exprFromTerms(e.Dnf().terms)
	assert.True(t, rebuilt.Equal(e))
}
