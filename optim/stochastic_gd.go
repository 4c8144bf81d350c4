package optim

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StochasticGD is the epoch/minibatch variant of gradient descent. Each
// epoch shuffles the training-set row order, partitions it into minibatches
// of BatchSize rows (the final partial batch, if any, is still used) and
// performs one descent update per minibatch.
type StochasticGD struct {
	Alpha     float64
	Epochs    int
	BatchSize int
	// Rng drives the per-epoch shuffle. Leave nil to use the global source;
	// set a seeded generator for reproducible training.
	Rng *rand.Rand
}

// NewStochasticGD returns stochastic gradient descent with a learning rate
// of 0.1 over 20 epochs of 32-row minibatches.
func NewStochasticGD() StochasticGD {
	return StochasticGD{Alpha: 0.1, Epochs: 20, BatchSize: 32}
}

func (sgd StochasticGD) Optimize(m Optimizable, start []float64, inputs, targets mat.Matrix) []float64 {
	params := append([]float64(nil), start...)
	rows, _ := inputs.Dims()

	batch := sgd.BatchSize
	if batch < 1 || batch > rows {
		batch = rows
	}

	for epoch := 0; epoch < sgd.Epochs; epoch++ {
		var order []int
		if sgd.Rng != nil {
			order = sgd.Rng.Perm(rows)
		} else {
			order = rand.Perm(rows)
		}

		for lo := 0; lo < rows; lo += batch {
			hi := lo + batch
			if hi > rows {
				hi = rows
			}
			batchIn, batchTg := selectRows(inputs, targets, order[lo:hi])
			_, grad := m.ComputeGrad(params, batchIn, batchTg)
			floats.AddScaled(params, -sgd.Alpha, grad)
		}
	}

	return params
}

// selectRows copies the given rows of both matrices into fresh minibatch
// matrices, preserving the shuffled order.
func selectRows(inputs, targets mat.Matrix, idx []int) (mat.Matrix, mat.Matrix) {
	_, inCols := inputs.Dims()
	_, tgCols := targets.Dims()
	batchIn := mat.NewDense(len(idx), inCols, nil)
	batchTg := mat.NewDense(len(idx), tgCols, nil)
	for k, r := range idx {
		for j := 0; j < inCols; j++ {
			batchIn.Set(k, j, inputs.At(r, j))
		}
		for j := 0; j < tgCols; j++ {
			batchTg.Set(k, j, targets.At(r, j))
		}
	}
	return batchIn, batchTg
}
