package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GradientDesc is fixed-iteration full-batch gradient descent. Each
// iteration evaluates the model against the entire training set and steps
// every parameter by -Alpha times its gradient component. There is no
// convergence check; the loop always runs Iters times.
type GradientDesc struct {
	Alpha float64 // learning rate
	Iters int
}

// NewGradientDesc returns gradient descent with a learning rate of 0.3 over
// 100 iterations.
func NewGradientDesc() GradientDesc {
	return GradientDesc{Alpha: 0.3, Iters: 100}
}

func (gd GradientDesc) Optimize(m Optimizable, start []float64, inputs, targets mat.Matrix) []float64 {
	params := append([]float64(nil), start...)
	for i := 0; i < gd.Iters; i++ {
		_, grad := m.ComputeGrad(params, inputs, targets)
		floats.AddScaled(params, -gd.Alpha, grad)
	}
	return params
}
