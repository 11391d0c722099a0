// SPDX-License-Identifier: MIT

package rho_test

import (
	"fmt"

	"github.com/katalvlaran/rholaw/band"
	"github.com/katalvlaran/rholaw/builder"
	"github.com/katalvlaran/rholaw/rho"
)

// Star–plunder without tribute: balanced columns, near-maximal diversity.
func ExampleEvaluate() {
	W, err := builder.StarPlunder(10, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := rho.Evaluate(W)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)
	// Output: A=0.1000 D=0.9588 rho=0.0004
}

// Full tribute scored on row totals: the hub dominates and rho is critical.
func ExampleEvaluator_Exceeds() {
	W, err := builder.StarPlunder(50, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	ev := rho.NewEvaluator(rho.WithAxis(rho.Rows))
	res, err := ev.Evaluate(W)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res, ev.Exceeds(res), band.Default().Classify(res.Rho))
	// Output: A=0.9804 D=0.0200 rho=0.9420 true black
}
