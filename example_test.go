// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic_test

import (
	"fmt"

	"github.com/marlls1989/espressologic"
)

// This example shows the basic usage of the package: build expressions,
// compare them and print their factored form.
func Example_basic() {
	a := espressologic.Variable("a")
	b := espressologic.Variable("b")

	xor := a.And(b.Not()).Or(a.Not().And(b))
	fmt.Println(xor)
	// canonicity makes equivalence a constant-time check
	fmt.Println(xor.Equal(b.And(a.Not()).Or(b.Not().And(a))))
	fmt.Println(xor.Evaluate(map[string]bool{"a": true}))
	// Output:
	// ~a * b + a * ~b
	// true
	// true
}

// Covers accumulate truth-table rows and minimize through the two-level
// minimizer.
func ExampleCover_Minimize() {
	cover := espressologic.New(espressologic.F)
	cover.AddCube([]espressologic.Value{espressologic.High, espressologic.DontCare},
		[]espressologic.Value{espressologic.High})
	cover.AddCube([]espressologic.Value{espressologic.High, espressologic.High},
		[]espressologic.Value{espressologic.High})

	min, err := cover.Minimize()
	if err != nil {
		fmt.Println(err)
		return
	}
	for cube := range min.Cubes() {
		fmt.Println(cube)
	}
	// Output:
	// F 1- 1
}

// Expressions move in and out of covers by output name.
func ExampleCover_AddExpression() {
	a := espressologic.Variable("a")
	b := espressologic.Variable("b")

	cover := espressologic.New(espressologic.F)
	if err := cover.AddExpression(a.Or(b), "either"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cover.InputLabels())
	fmt.Println(cover.OutputLabels())

	back, _ := cover.ToExpression("either")
	fmt.Println(back.Equal(a.Or(b)))
	// Output:
	// [a b]
	// [either]
	// true
}
