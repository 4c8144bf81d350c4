package nn

import (
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"mlkit/fn"
	"mlkit/optim"
)

const gradTol = 1e-4

func randomDense(rng *xrand.Rand, r, c int, scale float64) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, (rng.Float64()*2-1)*scale)
		}
	}
	return m
}

func checkGradient(t *testing.T, net *NeuralNet, inputs, targets mat.Matrix, sample int) {
	t.Helper()

	_, analytic := net.ComputeGrad(net.weights, inputs, targets)

	costAt := func(w []float64) float64 {
		cost, _ := net.ComputeGrad(w, inputs, targets)
		return cost
	}
	numeric := fd.Gradient(nil, costAt, net.weights, &fd.Settings{Formula: fd.Central})

	for i := range analytic {
		if math.Abs(analytic[i]-numeric[i]) > gradTol {
			t.Errorf("sample %d weight %d: analytic %.8f, numeric %.8f", sample, i, analytic[i], numeric[i])
		}
	}
}

func TestBackpropMatchesFiniteDifferencesBCE(t *testing.T) {
	rng := xrand.New(xrand.NewSource(7))
	for sample := 0; sample < 6; sample++ {
		net, err := NewWithSource([]int{2, 3, 1}, fn.BCE(), optim.NewGradientDesc(), xrand.NewSource(rng.Uint64()))
		if err != nil {
			t.Fatal(err)
		}
		inputs := randomDense(rng, 4, 2, 2)
		targets := mat.NewDense(4, 1, nil)
		for i := 0; i < 4; i++ {
			targets.Set(i, 0, float64(rng.Intn(2)))
		}
		checkGradient(t, net, inputs, targets, sample)
	}
}

func TestBackpropMatchesFiniteDifferencesMSE(t *testing.T) {
	rng := xrand.New(xrand.NewSource(23))
	for sample := 0; sample < 5; sample++ {
		net, err := NewWithSource([]int{3, 4, 2}, fn.MSE(), optim.NewGradientDesc(), xrand.NewSource(rng.Uint64()))
		if err != nil {
			t.Fatal(err)
		}
		inputs := randomDense(rng, 5, 3, 1.5)
		targets := randomDense(rng, 5, 2, 1)
		checkGradient(t, net, inputs, targets, sample)
	}
}

func TestBackpropMatchesFiniteDifferencesTanh(t *testing.T) {
	rng := xrand.New(xrand.NewSource(41))
	criterion := fn.Criterion{Activation: fn.Tanh{}, Cost: fn.MeanSquared{}}
	for sample := 0; sample < 5; sample++ {
		net, err := NewWithSource([]int{2, 5, 3, 1}, criterion, optim.NewGradientDesc(), xrand.NewSource(rng.Uint64()))
		if err != nil {
			t.Fatal(err)
		}
		inputs := randomDense(rng, 3, 2, 2)
		targets := randomDense(rng, 3, 1, 1)
		checkGradient(t, net, inputs, targets, sample)
	}
}
