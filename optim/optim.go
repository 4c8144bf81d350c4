// Package optim provides first-order optimization over flat parameter
// vectors, decoupled from any particular model through the Optimizable
// contract.
package optim

import "gonum.org/v1/gonum/mat"

// Optimizable is implemented by every trainable model: given a flat
// parameter vector, an input batch and a target batch, it returns the scalar
// training cost and the flat cost gradient. The gradient has the same length
// and ordering as the parameter vector.
type Optimizable interface {
	ComputeGrad(params []float64, inputs, targets mat.Matrix) (float64, []float64)
}

// Method is an optimization algorithm. Optimize never mutates start; it
// returns a freshly allocated optimized parameter vector.
type Method interface {
	Optimize(m Optimizable, start []float64, inputs, targets mat.Matrix) []float64
}
