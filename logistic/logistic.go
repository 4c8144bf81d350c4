// Package logistic implements logistic regression trained by gradient
// descent. The regressor adds the intercept term itself, so input matrices
// need no ones column.
package logistic

import (
	"gonum.org/v1/gonum/mat"

	"mlkit/fn"
	"mlkit/model"
	"mlkit/optim"
)

// Regressor is a single sigmoid unit over intercept-augmented inputs. It is
// untrained until the first successful Train call; each Train fully replaces
// the parameter vector.
type Regressor struct {
	method     optim.Method
	parameters []float64
	trained    bool
}

// New constructs an untrained regressor using the given optimization method.
func New(method optim.Method) *Regressor {
	return &Regressor{method: method}
}

// Default constructs a regressor trained by default batch gradient descent.
func Default() *Regressor {
	return New(optim.NewGradientDesc())
}

// Parameters returns a copy of the fitted parameter vector (intercept
// first), or nil if the regressor has not been trained.
func (r *Regressor) Parameters() []float64 {
	if !r.trained {
		return nil
	}
	return append([]float64(nil), r.parameters...)
}

// Train fits the regressor to row-per-example inputs and N×1 targets.
// Optimization starts from 0.5 for every parameter.
func (r *Regressor) Train(inputs, targets mat.Matrix) error {
	rows, cols := inputs.Dims()
	tgRows, tgCols := targets.Dims()
	if tgCols != 1 {
		return &model.DimensionError{Op: "logistic train", Dim: "target columns", Want: 1, Got: tgCols}
	}
	if tgRows != rows {
		return &model.DimensionError{Op: "logistic train", Dim: "target rows", Want: rows, Got: tgRows}
	}

	full := addIntercept(inputs)
	start := make([]float64, cols+1)
	for i := range start {
		start[i] = 0.5
	}

	r.parameters = r.method.Optimize(r, start, full, targets)
	r.trained = true
	return nil
}

// Predict returns the sigmoid output for each input row. It fails with
// model.ErrNotTrained before the first successful Train.
func (r *Regressor) Predict(inputs mat.Matrix) (mat.Matrix, error) {
	if !r.trained {
		return nil, model.ErrNotTrained
	}
	rows, cols := inputs.Dims()
	if cols != len(r.parameters)-1 {
		return nil, &model.DimensionError{Op: "logistic predict", Dim: "input columns", Want: len(r.parameters) - 1, Got: cols}
	}

	full := addIntercept(inputs)
	beta := mat.NewDense(len(r.parameters), 1, r.parameters)
	z := mat.NewDense(rows, 1, nil)
	z.Product(full, beta)

	out := mat.NewDense(rows, 1, nil)
	out.Apply(fn.Sigmoid{}.Apply, z)
	return out, nil
}

// ComputeGrad implements optim.Optimizable. Inputs arrive already
// intercept-augmented by Train. The gradient is the output error pushed back
// through the transposed inputs, averaged over the batch.
func (r *Regressor) ComputeGrad(params []float64, inputs, targets mat.Matrix) (float64, []float64) {
	rows, cols := inputs.Dims()

	beta := mat.NewDense(cols, 1, params)
	z := mat.NewDense(rows, 1, nil)
	z.Product(inputs, beta)
	outputs := mat.NewDense(rows, 1, nil)
	outputs.Apply(fn.Sigmoid{}.Apply, z)

	cost := fn.CrossEntropy{}.Cost(outputs, targets)

	diff := mat.NewDense(rows, 1, nil)
	diff.Sub(outputs, targets)
	g := mat.NewDense(cols, 1, nil)
	g.Product(inputs.T(), diff)

	grad := make([]float64, cols)
	for i := range grad {
		grad[i] = g.At(i, 0) / float64(rows)
	}
	return cost, grad
}

func addIntercept(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		o.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			o.Set(i, j+1, m.At(i, j))
		}
	}
	return o
}
