// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"fmt"
	"iter"
)

// CoverType selects which of the F (on-set), D (don't-care) and R (off-set)
// partitions a cover carries. The values form a bitmask with F always
// present.
type CoverType int

const (
	F   CoverType = 1
	FD  CoverType = 3
	FR  CoverType = 5
	FDR CoverType = 7
)

// HasF reports whether covers of this type carry an on-set. Always true.
func (t CoverType) HasF() bool { return t&1 != 0 }

// HasD reports whether covers of this type carry a don't-care set.
func (t CoverType) HasD() bool { return t&2 != 0 }

// HasR reports whether covers of this type carry an off-set.
func (t CoverType) HasR() bool { return t&4 != 0 }

func (t CoverType) String() string {
	switch t {
	case F:
		return "F"
	case FD:
		return "FD"
	case FR:
		return "FR"
	case FDR:
		return "FDR"
	}
	return fmt.Sprintf("CoverType(%d)", int(t))
}

// Cover is a multi-output truth table in cube form. It grows on demand: a
// cube wider than the current dimensions widens the cover, padding existing
// cubes with input don't-cares and deasserted outputs.
//
// Covers are not safe for concurrent mutation.
type Cover struct {
	numInputs  int
	numOutputs int
	inputs     labelSet
	outputs    labelSet
	cubes      []Cube
	ctype      CoverType
}

// New returns an empty cover of the given type with no inputs or outputs.
func New(t CoverType) *Cover {
	return &Cover{
		inputs:  newLabelSet('x'),
		outputs: newLabelSet('y'),
		ctype:   t,
	}
}

// WithLabels returns an empty cover whose input and output columns carry the
// given names, in order.
func WithLabels(t CoverType, inputs, outputs []string) *Cover {
	return &Cover{
		numInputs:  len(inputs),
		numOutputs: len(outputs),
		inputs:     labelSetFrom('x', inputs),
		outputs:    labelSetFrom('y', outputs),
		ctype:      t,
	}
}

// Type returns which partitions the cover carries.
func (c *Cover) Type() CoverType { return c.ctype }

// NumInputs returns the current input width.
func (c *Cover) NumInputs() int { return c.numInputs }

// NumOutputs returns the current output count.
func (c *Cover) NumOutputs() int { return c.numOutputs }

// InputLabels returns the input column names in order, or nil while the
// cover is unlabeled.
func (c *Cover) InputLabels() []string {
	c.inputs.backfill(c.numInputs)
	return c.inputs.slice()
}

// OutputLabels returns the output column names in order, or nil while the
// cover is unlabeled.
func (c *Cover) OutputLabels() []string {
	c.outputs.backfill(c.numOutputs)
	return c.outputs.slice()
}

// NumCubes returns the size of the cover in the espresso convention: for F
// and FD covers only the on-set cubes count, for FR and FDR covers every
// cube counts.
func (c *Cover) NumCubes() int {
	if c.ctype == F || c.ctype == FD {
		n := 0
		for _, cube := range c.cubes {
			if cube.ctype == CubeF {
				n++
			}
		}
		return n
	}
	return len(c.cubes)
}

// Cubes iterates the cover's cubes in insertion order. F covers yield only
// the on-set; every other type yields all partitions.
func (c *Cover) Cubes() iter.Seq[Cube] {
	return func(yield func(Cube) bool) {
		for _, cube := range c.cubes {
			if c.ctype == F && cube.ctype != CubeF {
				continue
			}
			if !yield(cube) {
				return
			}
		}
	}
}

// AddCube records one truth-table row. Each output position is classified
// independently: High joins the on-set, Low the off-set and DontCare the
// don't-care set, so a single row can fan out into up to three cubes, one
// per partition the cover supports. Output values landing in a partition the
// cover does not carry are dropped.
//
// The row may be wider than the cover; the cover grows to fit.
func (c *Cover) AddCube(inputs []Value, outputs []Value) {
	c.growToFit(len(inputs), len(outputs))

	in := make([]Value, c.numInputs)
	copy(in, inputs)
	for i := len(inputs); i < c.numInputs; i++ {
		in[i] = DontCare
	}

	var fOut, dOut, rOut []bool
	var hasF, hasD, hasR bool
	for i, v := range outputs {
		switch {
		case v == High && c.ctype.HasF():
			if fOut == nil {
				fOut = make([]bool, c.numOutputs)
			}
			fOut[i] = true
			hasF = true
		case v == DontCare && c.ctype.HasD():
			if dOut == nil {
				dOut = make([]bool, c.numOutputs)
			}
			dOut[i] = true
			hasD = true
		case v == Low && c.ctype.HasR():
			if rOut == nil {
				rOut = make([]bool, c.numOutputs)
			}
			rOut[i] = true
			hasR = true
		}
	}
	if hasF {
		c.cubes = append(c.cubes, Cube{inputs: in, outputs: fOut, ctype: CubeF})
	}
	if hasD {
		c.cubes = append(c.cubes, Cube{inputs: in, outputs: dOut, ctype: CubeD})
	}
	if hasR {
		c.cubes = append(c.cubes, Cube{inputs: in, outputs: rOut, ctype: CubeR})
	}
}

// growToFit widens the cover to at least the given dimensions, padding the
// cubes already stored.
func (c *Cover) growToFit(numInputs, numOutputs int) {
	if numInputs <= c.numInputs && numOutputs <= c.numOutputs {
		return
	}
	if numInputs > c.numInputs {
		c.numInputs = numInputs
	}
	if numOutputs > c.numOutputs {
		c.numOutputs = numOutputs
	}
	for i := range c.cubes {
		c.cubes[i] = c.cubes[i].padded(c.numInputs, c.numOutputs)
	}
	c.inputs.backfill(c.numInputs)
	c.outputs.backfill(c.numOutputs)
}

// partition splits the stored cubes by type.
func (c *Cover) partition() (f, d, r []Cube) {
	for _, cube := range c.cubes {
		switch cube.ctype {
		case CubeF:
			f = append(f, cube)
		case CubeD:
			d = append(d, cube)
		case CubeR:
			r = append(r, cube)
		}
	}
	return f, d, r
}
