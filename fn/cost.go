package fn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// epsilon keeps the cross-entropy logarithms and denominators away from zero
// when an output saturates at exactly 0 or 1.
const epsilon = 1e-15

// Cost maps a (predicted, target) matrix pair of identical shape to a scalar
// cost, averaged over rows. Grad returns the element-wise derivative of the
// per-row-summed cost with respect to each predicted entry; the batch
// averaging is applied by the caller when gradient blocks are assembled.
type Cost interface {
	Cost(outputs, targets mat.Matrix) float64
	Grad(outputs, targets mat.Matrix) mat.Matrix
	fmt.Stringer
}

var CostLookup = map[string]Cost{
	"crossentropy": CrossEntropy{},
	"meansquared":  MeanSquared{},
}

type CrossEntropy struct{}

func (CrossEntropy) Cost(outputs, targets mat.Matrix) float64 {
	rows, cols := outputs.Dims()
	var cost float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			h := outputs.At(i, j)
			y := targets.At(i, j)
			cost += -y*math.Log(h+epsilon) - (1-y)*math.Log(1-h+epsilon)
		}
	}
	return cost / float64(rows)
}

func (CrossEntropy) Grad(outputs, targets mat.Matrix) mat.Matrix {
	rows, cols := outputs.Dims()
	g := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			h := outputs.At(i, j)
			y := targets.At(i, j)
			g.Set(i, j, (h-y)/((h+epsilon)*(1-h+epsilon)))
		}
	}
	return g
}

func (CrossEntropy) String() string {
	return "crossentropy"
}

type MeanSquared struct{}

func (MeanSquared) Cost(outputs, targets mat.Matrix) float64 {
	rows, cols := outputs.Dims()
	var cost float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := outputs.At(i, j) - targets.At(i, j)
			cost += d * d / 2
		}
	}
	return cost / float64(rows)
}

func (MeanSquared) Grad(outputs, targets mat.Matrix) mat.Matrix {
	rows, cols := outputs.Dims()
	g := mat.NewDense(rows, cols, nil)
	g.Sub(outputs, targets)
	return g
}

func (MeanSquared) String() string {
	return "meansquared"
}
