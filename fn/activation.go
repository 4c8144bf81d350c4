package fn

import (
	"fmt"
	"math"
)

// Activation maps pre-activation values element-wise and supplies the
// derivative with respect to the pre-activation. The (i, j) indices make
// both methods directly usable with mat.Dense.Apply.
type Activation interface {
	Apply(i, j int, z float64) float64
	Grad(i, j int, z float64) float64
	fmt.Stringer
}

var ActivationLookup = map[string]Activation{
	"sigmoid": Sigmoid{},
	"tanh":    Tanh{},
	"relu":    ReLU{},
	"linear":  Linear{},
}

type Sigmoid struct{}

func (Sigmoid) Apply(i, j int, z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func (s Sigmoid) Grad(i, j int, z float64) float64 {
	a := s.Apply(i, j, z)
	return a * (1 - a)
}

func (Sigmoid) String() string {
	return "sigmoid"
}

type Tanh struct{}

func (Tanh) Apply(i, j int, z float64) float64 {
	return math.Tanh(z)
}

func (Tanh) Grad(i, j int, z float64) float64 {
	t := math.Tanh(z)
	return 1.0 - t*t
}

func (Tanh) String() string {
	return "tanh"
}

// ReLU is the leaky variant with a 0.0001 negative slope.
type ReLU struct{}

func (ReLU) Apply(i, j int, z float64) float64 {
	if z < 0 {
		return 0.0001 * z
	}
	return z
}

func (ReLU) Grad(i, j int, z float64) float64 {
	if z < 0 {
		return 0.0001
	}
	return 1
}

func (ReLU) String() string {
	return "relu"
}

// Linear is the identity activation, paired with mean squared error for
// regression criteria.
type Linear struct{}

func (Linear) Apply(i, j int, z float64) float64 {
	return z
}

func (Linear) Grad(i, j int, z float64) float64 {
	return 1
}

func (Linear) String() string {
	return "linear"
}
