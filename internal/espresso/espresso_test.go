// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espresso

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLifecycle(t *testing.T) {
	_, ok := Current()
	require.False(t, ok)

	e1, err := New(2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, e1.NumInputs())
	assert.Equal(t, 1, e1.NumOutputs())

	cur, ok := Current()
	require.True(t, ok)
	cur.Close()

	// same dimensions join the live instance
	e2, err := New(2, 1, nil)
	require.NoError(t, err)

	// different dimensions conflict while it lives
	_, err = New(3, 1, nil)
	var dim *DimensionError
	require.ErrorAs(t, err, &dim)
	assert.Equal(t, 3, dim.RequestedInputs)
	assert.Equal(t, 2, dim.ExistingInputs)

	e1.Close()
	e1.Close() // double close is a no-op
	e2.Close()

	// all references gone, new dimensions are fine now
	e3, err := New(3, 1, nil)
	require.NoError(t, err)
	e3.Close()

	_, ok = Current()
	assert.False(t, ok)
}

func TestConfigConflict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SingleExpand = true
	e1, err := New(2, 1, &cfg)
	require.NoError(t, err)
	defer e1.Close()

	other := DefaultConfig()
	_, err = New(2, 1, &other)
	var conf *ConfigError
	require.ErrorAs(t, err, &conf)

	// nil config joins whatever is live
	e2, err := New(2, 1, nil)
	require.NoError(t, err)
	assert.True(t, e2.Config().SingleExpand)
	e2.Close()
}

func TestCoverKeepsInstanceAlive(t *testing.T) {
	e, err := New(2, 1, nil)
	require.NoError(t, err)

	cov, err := FromCubes([]Cube{{Inputs: []byte{One, One}, Outputs: []byte{One}}}, 2, 1)
	require.NoError(t, err)

	e.Close()
	// the cover still holds a reference
	cur, ok := Current()
	require.True(t, ok)
	cur.Close()

	cov.Release()
	cov.Release() // no-op
	_, ok = Current()
	assert.False(t, ok)
}

func TestCoverReleaseConcurrent(t *testing.T) {
	e, err := New(2, 1, nil)
	require.NoError(t, err)

	cov, err := FromCubes([]Cube{{Inputs: []byte{One, One}, Outputs: []byte{One}}}, 2, 1)
	require.NoError(t, err)

	// racing releases must drop exactly one reference
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cov.Release()
		}()
	}
	wg.Wait()

	// the handle's reference is still the last one standing
	cur, ok := Current()
	require.True(t, ok)
	cur.Close()
	e.Close()
	_, ok = Current()
	assert.False(t, ok)
}

func TestFromCubesValidation(t *testing.T) {
	e, err := New(2, 1, nil)
	require.NoError(t, err)
	defer e.Close()

	_, err = FromCubes([]Cube{{Inputs: []byte{3, Zero}, Outputs: []byte{One}}}, 2, 1)
	var val *ValueError
	require.ErrorAs(t, err, &val)
	assert.Equal(t, byte(3), val.Value)
	assert.Equal(t, 0, val.Position)

	_, err = FromCubes([]Cube{{Inputs: []byte{One, Zero}, Outputs: []byte{2}}}, 2, 1)
	require.ErrorAs(t, err, &val)
	assert.Equal(t, 2, val.Position)

	_, err = FromCubes([]Cube{{Inputs: []byte{One}, Outputs: []byte{One}}}, 2, 1)
	var dim *DimensionError
	require.ErrorAs(t, err, &dim)
}

func minimizeF(t *testing.T, cubes []Cube, numInputs int) []Cube {
	t.Helper()
	e, err := New(numInputs, 1, nil)
	require.NoError(t, err)
	defer e.Close()

	f, err := FromCubes(cubes, numInputs, 1)
	require.NoError(t, err)
	defer f.Release()

	fmin, dmin, rmin, err := e.Minimize(f, nil, nil)
	require.NoError(t, err)
	defer fmin.Release()
	defer dmin.Release()
	defer rmin.Release()
	return fmin.Cubes()
}

func TestMinimizeAbsorbs(t *testing.T) {
	out := minimizeF(t, []Cube{
		{Inputs: []byte{One, DC}, Outputs: []byte{One}},
		{Inputs: []byte{One, One}, Outputs: []byte{One}},
	}, 2)
	require.Len(t, out, 1)
	assert.Equal(t, []byte{One, DC}, out[0].Inputs)
}

func TestMinimizeXor(t *testing.T) {
	out := minimizeF(t, []Cube{
		{Inputs: []byte{Zero, One}, Outputs: []byte{One}},
		{Inputs: []byte{One, Zero}, Outputs: []byte{One}},
	}, 2)
	assert.Len(t, out, 2)
}

func TestMinimizeUnateCollapse(t *testing.T) {
	out := minimizeF(t, []Cube{
		{Inputs: []byte{Zero, Zero, Zero}, Outputs: []byte{One}},
		{Inputs: []byte{Zero, Zero, One}, Outputs: []byte{One}},
		{Inputs: []byte{Zero, One, Zero}, Outputs: []byte{One}},
		{Inputs: []byte{Zero, One, One}, Outputs: []byte{One}},
	}, 3)
	require.Len(t, out, 1)
	assert.Equal(t, []byte{Zero, DC, DC}, out[0].Inputs)
}

func TestMinimizeComputesComplement(t *testing.T) {
	e, err := New(2, 1, nil)
	require.NoError(t, err)
	defer e.Close()

	f, err := FromCubes([]Cube{{Inputs: []byte{One, One}, Outputs: []byte{One}}}, 2, 1)
	require.NoError(t, err)
	defer f.Release()

	fmin, dmin, rmin, err := e.Minimize(f, nil, nil)
	require.NoError(t, err)
	defer fmin.Release()
	defer dmin.Release()
	defer rmin.Release()

	assert.Equal(t, 0, dmin.Len())
	// the off-set partitions the complement of ab
	assert.Equal(t, 2, rmin.Len())
}

func TestMinimizeMultiOutput(t *testing.T) {
	e, err := New(2, 2, nil)
	require.NoError(t, err)
	defer e.Close()

	// output 0 is a AND b, output 1 is a
	f, err := FromCubes([]Cube{
		{Inputs: []byte{One, One}, Outputs: []byte{One, Zero}},
		{Inputs: []byte{One, DC}, Outputs: []byte{Zero, One}},
	}, 2, 2)
	require.NoError(t, err)
	defer f.Release()

	fmin, dmin, rmin, err := e.Minimize(f, nil, nil)
	require.NoError(t, err)
	defer fmin.Release()
	defer dmin.Release()
	defer rmin.Release()

	// the ab cube must not expand over output 0's off-set
	for _, c := range fmin.Cubes() {
		if c.Outputs[0] == One {
			assert.Equal(t, []byte{One, One}, c.Inputs)
		}
	}
	assert.Len(t, fmin.Cubes(), 2)
}

func TestMinimizeStaleCover(t *testing.T) {
	e, err := New(2, 1, nil)
	require.NoError(t, err)
	defer e.Close()

	f, err := FromCubes([]Cube{{Inputs: []byte{One, One}, Outputs: []byte{One}}}, 2, 1)
	require.NoError(t, err)
	f.Release()

	_, _, _, err = e.Minimize(f, nil, nil)
	assert.ErrorIs(t, err, ErrStaleCover)
}
