// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import "iter"

// AddExpression attaches expr as a new named output. Input variables are
// matched to existing input columns by name; unknown variables are appended
// in alphabetical order and existing cubes are padded with don't-cares. The
// expression's product terms join the on-set with only the new output
// asserted.
//
// The cover switches to labeled mode. Reusing an output name fails with an
// OutputExistsError.
func (c *Cover) AddExpression(expr *Expr, outputName string) error {
	d := expr.Dnf()

	c.outputs.materialize(c.numOutputs)
	if _, exists := c.outputs.position(outputName); exists {
		return &OutputExistsError{Name: outputName}
	}
	c.inputs.materialize(c.numInputs)

	varToIndex := make(map[string]int)
	newVars := 0
	for _, name := range d.Variables() {
		if pos, ok := c.inputs.position(name); ok {
			varToIndex[name] = pos
			continue
		}
		idx := c.numInputs + newVars
		c.inputs.add(name, idx)
		varToIndex[name] = idx
		newVars++
	}
	c.numInputs += newVars

	outputIndex := c.numOutputs
	c.outputs.add(outputName, outputIndex)
	c.numOutputs++

	for i := range c.cubes {
		c.cubes[i] = c.cubes[i].padded(c.numInputs, c.numOutputs)
	}

	for term := range d.Terms() {
		in := make([]Value, c.numInputs)
		for i := range in {
			in[i] = DontCare
		}
		for name, polarity := range term {
			if polarity {
				in[varToIndex[name]] = High
			} else {
				in[varToIndex[name]] = Low
			}
		}
		out := make([]bool, c.numOutputs)
		out[outputIndex] = true
		c.cubes = append(c.cubes, Cube{inputs: in, outputs: out, ctype: CubeF})
	}
	return nil
}

// ToExpression rebuilds the named output as an expression. It fails with an
// OutputNotFoundError when no output carries that name.
func (c *Cover) ToExpression(outputName string) (*Expr, error) {
	idx, ok := c.outputs.position(outputName)
	if !ok {
		return nil, &OutputNotFoundError{Name: outputName}
	}
	return c.ToExpressionAt(idx)
}

// ToExpressionAt rebuilds the output at the given index as an expression,
// factoring the on-set cubes that assert it. Out-of-range indices fail with
// an OutputIndexError.
func (c *Cover) ToExpressionAt(index int) (*Expr, error) {
	if index < 0 || index >= c.numOutputs {
		return nil, &OutputIndexError{Index: index, Max: max(c.numOutputs-1, 0)}
	}
	return exprFromTerms(c.termsForOutput(index)), nil
}

// Expressions iterates (name, expression) pairs for every output in column
// order. Unlabeled outputs get generated names without switching the cover
// to labeled mode.
func (c *Cover) Expressions() iter.Seq2[string, *Expr] {
	return func(yield func(string, *Expr) bool) {
		for idx := 0; idx < c.numOutputs; idx++ {
			if !yield(c.outputs.generated(idx), exprFromTerms(c.termsForOutput(idx))) {
				return
			}
		}
	}
}

// termsForOutput collects the on-set cubes asserting output idx as product
// terms keyed by input label.
func (c *Cover) termsForOutput(idx int) []map[string]bool {
	var terms []map[string]bool
	for _, cube := range c.cubes {
		if cube.ctype != CubeF || idx >= len(cube.outputs) || !cube.outputs[idx] {
			continue
		}
		term := make(map[string]bool)
		for i, v := range cube.inputs {
			switch v {
			case High:
				term[c.inputs.generated(i)] = true
			case Low:
				term[c.inputs.generated(i)] = false
			}
		}
		terms = append(terms, term)
	}
	return terms
}

// ExprToCover builds a single-output F cover named "out" from an
// expression, with the expression's variables as input labels in sorted
// order.
func ExprToCover(expr *Expr) *Cover {
	c := WithLabels(F, expr.Dnf().Variables(), nil)
	// cannot collide in a fresh cover
	_ = c.AddExpression(expr, "out")
	return c
}
