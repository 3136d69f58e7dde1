// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espresso

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Input position codes on the wire. DC marks a position the cube does not
// constrain.
const (
	Zero byte = 0
	One  byte = 1
	DC   byte = 2
)

// Cube is one product term in wire form: Inputs over {0, 1, 2} and Outputs
// over {0, 1}.
type Cube struct {
	Inputs  []byte
	Outputs []byte
}

// cube is the internal working form, with the asserted outputs as a bitmask.
type cube struct {
	in  []byte
	out *bitset.BitSet
}

// Cover is a cube list bound to the live instance. Building one takes a
// reference on the instance; Release gives it back. A cover returned by
// Minimize must be released as well.
type Cover struct {
	inst     *instance
	cubes    []cube
	mu       sync.Mutex
	released bool
}

// FromCubes validates and encodes a cube list, acquiring the instance for
// the given dimensions (creating it with the default configuration when
// none is live). Cubes whose width differs from the dimensions fail with a
// DimensionError; bytes outside the alphabets fail with a ValueError.
func FromCubes(cubes []Cube, numInputs, numOutputs int) (*Cover, error) {
	encoded := make([]cube, 0, len(cubes))
	for _, c := range cubes {
		if len(c.Inputs) != numInputs || len(c.Outputs) != numOutputs {
			return nil, &DimensionError{
				RequestedInputs:  len(c.Inputs),
				RequestedOutputs: len(c.Outputs),
				ExistingInputs:   numInputs,
				ExistingOutputs:  numOutputs,
			}
		}
		for i, v := range c.Inputs {
			if v > DC {
				return nil, &ValueError{Value: v, Position: i}
			}
		}
		out := bitset.New(uint(numOutputs))
		for i, v := range c.Outputs {
			if v > One {
				return nil, &ValueError{Value: v, Position: numInputs + i}
			}
			if v == One {
				out.Set(uint(i))
			}
		}
		in := make([]byte, numInputs)
		copy(in, c.Inputs)
		encoded = append(encoded, cube{in: in, out: out})
	}
	in, err := acquire(numInputs, numOutputs, nil)
	if err != nil {
		return nil, err
	}
	return &Cover{inst: in, cubes: encoded}, nil
}

func newCover(in *instance, cubes []cube) *Cover {
	active.Lock()
	in.refs++
	active.Unlock()
	return &Cover{inst: in, cubes: cubes}
}

// stale reports whether the cover was released or belongs to another
// instance generation.
func (c *Cover) stale(in *instance) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released || c.inst != in
}

// Cubes decodes the cover back to wire form.
func (c *Cover) Cubes() []Cube {
	out := make([]Cube, 0, len(c.cubes))
	numOutputs := c.inst.numOutputs
	for _, cb := range c.cubes {
		in := make([]byte, len(cb.in))
		copy(in, cb.in)
		outs := make([]byte, numOutputs)
		for i := 0; i < numOutputs; i++ {
			if cb.out.Test(uint(i)) {
				outs[i] = One
			}
		}
		out = append(out, Cube{Inputs: in, Outputs: outs})
	}
	return out
}

// Len returns the number of cubes.
func (c *Cover) Len() int { return len(c.cubes) }

// Release drops the cover's reference on the instance. Releasing twice is a
// no-op, also from concurrent goroutines; the cube data stays readable.
func (c *Cover) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.released = true
	release(c.inst)
}
