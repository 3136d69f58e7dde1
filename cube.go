// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import "fmt"

// Value is the ternary alphabet of a cube input position. The numeric codes
// double as the wire encoding handed to the minimizer primitive.
type Value byte

const (
	Low      Value = 0
	High     Value = 1
	DontCare Value = 2
)

func (v Value) String() string {
	switch v {
	case Low:
		return "0"
	case High:
		return "1"
	case DontCare:
		return "-"
	}
	return fmt.Sprintf("Value(%d)", byte(v))
}

// CubeType tags which partition of a cover a cube belongs to: the on-set
// (F), the don't-care set (D) or the off-set (R).
type CubeType int

const (
	CubeF CubeType = iota
	CubeD
	CubeR
)

func (t CubeType) String() string {
	switch t {
	case CubeF:
		return "F"
	case CubeD:
		return "D"
	case CubeR:
		return "R"
	}
	return fmt.Sprintf("CubeType(%d)", int(t))
}

// Cube is one product term of a cover: a ternary input part and, for each
// output, whether the cube asserts it.
type Cube struct {
	inputs  []Value
	outputs []bool
	ctype   CubeType
}

// Inputs returns the input part. The slice is shared with the cover and
// must not be modified.
func (c Cube) Inputs() []Value { return c.inputs }

// Outputs returns the asserted-output flags. The slice is shared with the
// cover and must not be modified.
func (c Cube) Outputs() []bool { return c.outputs }

// Type returns the partition the cube belongs to.
func (c Cube) Type() CubeType { return c.ctype }

func (c Cube) String() string {
	buf := make([]byte, 0, len(c.inputs)+len(c.outputs)+4)
	for _, v := range c.inputs {
		buf = append(buf, v.String()[0])
	}
	buf = append(buf, ' ')
	for _, o := range c.outputs {
		if o {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return fmt.Sprintf("%s %s", c.ctype, buf)
}

// padded returns the cube grown to the requested dimensions, with fresh
// input positions reading DontCare and fresh outputs deasserted. Cubes
// already at size are returned unchanged.
func (c Cube) padded(numInputs, numOutputs int) Cube {
	if len(c.inputs) >= numInputs && len(c.outputs) >= numOutputs {
		return c
	}
	in := make([]Value, numInputs)
	copy(in, c.inputs)
	for i := len(c.inputs); i < numInputs; i++ {
		in[i] = DontCare
	}
	out := make([]bool, numOutputs)
	copy(out, c.outputs)
	return Cube{inputs: in, outputs: out, ctype: c.ctype}
}
