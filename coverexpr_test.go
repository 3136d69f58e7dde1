// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExpression(t *testing.T) {
	c := New(F)
	a := Variable("a")
	b := Variable("b")
	require.NoError(t, c.AddExpression(a.And(b), "and"))

	assert.Equal(t, 2, c.NumInputs())
	assert.Equal(t, 1, c.NumOutputs())
	assert.Equal(t, []string{"a", "b"}, c.InputLabels())
	assert.Equal(t, []string{"and"}, c.OutputLabels())
	assert.Equal(t, 1, c.NumCubes())
}

func TestAddExpressionMergesVariables(t *testing.T) {
	c := New(F)
	a := Variable("a")
	b := Variable("b")
	d := Variable("d")
	require.NoError(t, c.AddExpression(a.And(d), "first"))
	require.NoError(t, c.AddExpression(d.And(b), "second"))

	// b is new and lands after the existing columns
	assert.Equal(t, []string{"a", "d", "b"}, c.InputLabels())
	assert.Equal(t, []string{"first", "second"}, c.OutputLabels())
	assert.Equal(t, 3, c.NumInputs())
}

func TestAddExpressionLabelsUnlabeledCover(t *testing.T) {
	c := New(F)
	c.AddCube([]Value{High, Low}, []Value{High})
	require.NoError(t, c.AddExpression(Variable("a"), "q"))

	// the pre-existing columns got generated names before "a" was matched
	assert.Equal(t, []string{"x0", "x1", "a"}, c.InputLabels())
	assert.Equal(t, []string{"y0", "q"}, c.OutputLabels())
}

func TestAddExpressionDuplicateOutput(t *testing.T) {
	c := New(F)
	require.NoError(t, c.AddExpression(Variable("a"), "out"))
	err := c.AddExpression(Variable("b"), "out")
	var exists *OutputExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "out", exists.Name)
}

func TestToExpression(t *testing.T) {
	c := New(F)
	a := Variable("a")
	b := Variable("b")
	xor := a.And(b.Not()).Or(a.Not().And(b))
	require.NoError(t, c.AddExpression(xor, "xor"))
	require.NoError(t, c.AddExpression(a.Or(b), "or"))

	back, err := c.ToExpression("xor")
	require.NoError(t, err)
	assert.True(t, back.Equal(xor))

	back, err = c.ToExpressionAt(1)
	require.NoError(t, err)
	assert.True(t, back.Equal(a.Or(b)))
}

func TestToExpressionErrors(t *testing.T) {
	c := New(F)
	require.NoError(t, c.AddExpression(Variable("a"), "out"))

	_, err := c.ToExpression("missing")
	var notFound *OutputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)

	_, err = c.ToExpressionAt(3)
	var oob *OutputIndexError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 3, oob.Index)
	assert.Equal(t, 0, oob.Max)
}

func TestExpressions(t *testing.T) {
	c := New(F)
	a := Variable("a")
	b := Variable("b")
	require.NoError(t, c.AddExpression(a, "first"))
	require.NoError(t, c.AddExpression(a.And(b), "second"))

	got := map[string]*Expr{}
	for name, e := range c.Expressions() {
		got[name] = e
	}
	require.Len(t, got, 2)
	assert.True(t, got["first"].Equal(a))
	assert.True(t, got["second"].Equal(a.And(b)))
}

func TestExprCoverRoundTrip(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	c := Variable("c")
	cases := []*Expr{
		a,
		a.Not(),
		a.And(b).Or(c),
		a.And(b.Not()).Or(a.Not().And(b)),
		Constant(true),
		Constant(false),
	}
	for _, e := range cases {
		cover := ExprToCover(e)
		back, err := cover.ToExpression("out")
		require.NoError(t, err)
		assert.True(t, back.Equal(e), "round trip changed %v", e)
	}
}
