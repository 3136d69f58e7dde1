// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"errors"

	"github.com/marlls1989/espressologic/internal/espresso"
)

// Minimize runs two-level minimization on the cover and returns a new cover
// of the same type and labels with the on-set replaced by the minimized
// cube list. Covers without an explicit off-set have it computed as the
// complement of the on-set and don't-care set.
func (c *Cover) Minimize() (*Cover, error) {
	return c.minimize(nil, false)
}

// MinimizeExact runs the strongest setting of the minimizer. The result is
// irredundant but, like Minimize, not guaranteed minimum.
func (c *Cover) MinimizeExact() (*Cover, error) {
	return c.minimize(nil, true)
}

// MinimizeWithConfig is Minimize with explicit minimizer options. It fails
// when a live minimizer instance already runs under a different
// configuration.
func (c *Cover) MinimizeWithConfig(cfg espresso.Config) (*Cover, error) {
	return c.minimize(&cfg, false)
}

func (c *Cover) minimize(cfg *espresso.Config, exact bool) (*Cover, error) {
	esp, err := espresso.New(c.numInputs, c.numOutputs, cfg)
	if err != nil {
		return nil, wrapMinimization(err)
	}
	defer esp.Close()

	f, d, r := c.partition()
	fcov, err := c.encode(f)
	if err != nil {
		return nil, wrapMinimization(err)
	}
	defer fcov.Release()

	var dcov, rcov *espresso.Cover
	if c.ctype.HasD() {
		if dcov, err = c.encode(d); err != nil {
			return nil, wrapMinimization(err)
		}
		defer dcov.Release()
	}
	if c.ctype.HasR() {
		if rcov, err = c.encode(r); err != nil {
			return nil, wrapMinimization(err)
		}
		defer rcov.Release()
	}

	var fmin, dmin, rmin *espresso.Cover
	if exact {
		fmin, dmin, rmin, err = esp.MinimizeExact(fcov, dcov, rcov)
	} else {
		fmin, dmin, rmin, err = esp.Minimize(fcov, dcov, rcov)
	}
	if err != nil {
		return nil, wrapMinimization(err)
	}
	defer fmin.Release()
	defer dmin.Release()
	defer rmin.Release()

	result := &Cover{
		numInputs:  c.numInputs,
		numOutputs: c.numOutputs,
		inputs:     c.inputs.clone(),
		outputs:    c.outputs.clone(),
		ctype:      c.ctype,
	}
	result.appendDecoded(fmin, CubeF)
	if c.ctype.HasD() {
		result.appendDecoded(dmin, CubeD)
	}
	if c.ctype.HasR() {
		result.appendDecoded(rmin, CubeR)
	}
	return result, nil
}

// encode translates cubes to the primitive's wire form.
func (c *Cover) encode(cubes []Cube) (*espresso.Cover, error) {
	wire := make([]espresso.Cube, 0, len(cubes))
	for _, cube := range cubes {
		in := make([]byte, c.numInputs)
		for i, v := range cube.inputs {
			in[i] = byte(v)
		}
		out := make([]byte, c.numOutputs)
		for i, set := range cube.outputs {
			if set {
				out[i] = espresso.One
			}
		}
		wire = append(wire, espresso.Cube{Inputs: in, Outputs: out})
	}
	return espresso.FromCubes(wire, c.numInputs, c.numOutputs)
}

func (c *Cover) appendDecoded(cover *espresso.Cover, t CubeType) {
	for _, wire := range cover.Cubes() {
		in := make([]Value, len(wire.Inputs))
		for i, v := range wire.Inputs {
			in[i] = Value(v)
		}
		out := make([]bool, len(wire.Outputs))
		for i, v := range wire.Outputs {
			out[i] = v == espresso.One
		}
		c.cubes = append(c.cubes, Cube{inputs: in, outputs: out, ctype: t})
	}
}

func wrapMinimization(err error) error {
	var de *espresso.DimensionError
	var ce *espresso.ConfigError
	var ve *espresso.ValueError
	switch {
	case errors.As(err, &de), errors.As(err, &ce), errors.Is(err, espresso.ErrStaleCover):
		return &MinimizationError{Kind: MinimizationInstance, Err: err}
	case errors.As(err, &ve):
		return &MinimizationError{Kind: MinimizationCube, Err: err}
	}
	return &MinimizationError{Kind: MinimizationIO, Err: err}
}

// Minimize factors the expression through a single-output cover and the
// minimizer, returning an equivalent expression with a reduced sum of
// products behind it.
func (e *Expr) Minimize() (*Expr, error) {
	return e.minimizeExpr(false)
}

// MinimizeExact is Minimize at the strongest minimizer setting.
func (e *Expr) MinimizeExact() (*Expr, error) {
	return e.minimizeExpr(true)
}

func (e *Expr) minimizeExpr(exact bool) (*Expr, error) {
	cover := ExprToCover(e)
	min, err := cover.minimize(nil, exact)
	if err != nil {
		return nil, err
	}
	return exprFromTerms(min.termsForOutput(0)), nil
}
