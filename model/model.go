// Package model defines the contract shared by the supervised models in this
// toolkit and the error taxonomy their boundaries report.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotTrained is returned by Predict when the model has no parameters yet.
var ErrNotTrained = errors.New("model has not been trained")

// DimensionError reports a shape disagreement between the data handed to a
// model and the shape its configuration requires. It is raised at the
// train/predict boundary, before any propagation work is done.
type DimensionError struct {
	Op   string // operation that rejected the data, e.g. "nn train"
	Dim  string // which dimension disagreed, e.g. "input columns"
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s must be %d, got %d", e.Op, e.Dim, e.Want, e.Got)
}

// SupModel is a supervised model: it learns from paired inputs and targets
// and predicts targets for new inputs. Inputs and targets are row-per-example
// matrices.
type SupModel interface {
	Train(inputs, targets mat.Matrix) error
	Predict(inputs mat.Matrix) (mat.Matrix, error)
}
