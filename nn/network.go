// Package nn implements a multi-layer feed-forward network trained by
// backpropagation. All layer weight matrices live in a single flat parameter
// vector, which is what the optimizers in package optim operate on.
package nn

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"mlkit/fn"
	"mlkit/model"
	"mlkit/optim"
)

// NeuralNet is a feed-forward network over a fixed layer topology. The
// topology and criterion are set at construction; Train optimizes from the
// current weight vector, so a repeated Train continues from the fitted
// weights.
type NeuralNet struct {
	topology  []int
	blocks    []layerBlock
	weights   []float64
	criterion fn.Criterion
	method    optim.Method
	trained   bool
}

// New constructs an untrained network. The topology lists the neuron count
// of every layer, input through output, and must have at least two entries
// of at least one neuron each. Initial weights are drawn from the process
// random source; use NewWithSource for deterministic initialization.
func New(topology []int, criterion fn.Criterion, method optim.Method) (*NeuralNet, error) {
	return NewWithSource(topology, criterion, method, nil)
}

// NewWithSource is New with an explicit random source for weight
// initialization.
func NewWithSource(topology []int, criterion fn.Criterion, method optim.Method, src rand.Source) (*NeuralNet, error) {
	if len(topology) < 2 {
		return nil, fmt.Errorf("topology must have at least 2 layers, got %d", len(topology))
	}
	for l, size := range topology {
		if size < 1 {
			return nil, fmt.Errorf("layer %d must have at least 1 neuron, got %d", l, size)
		}
	}

	net := &NeuralNet{
		topology:  append([]int(nil), topology...),
		criterion: criterion,
		method:    method,
	}
	net.blocks = layerOffsets(net.topology)
	net.weights = initialWeights(net.blocks, src)
	return net, nil
}

// Default constructs a network with the binary cross entropy criterion and
// default stochastic gradient descent.
func Default(topology []int) (*NeuralNet, error) {
	return New(topology, fn.BCE(), optim.NewStochasticGD())
}

// initialWeights draws every layer block independently and uniformly from
// [-eps, eps] with eps = sqrt(6 / (in + 1 + out)), keeping early
// pre-activations in the responsive region of saturating activations.
func initialWeights(blocks []layerBlock, src rand.Source) []float64 {
	weights := make([]float64, totalWeights(blocks))
	for _, b := range blocks {
		eps := math.Sqrt(6.0 / float64(b.rows+b.cols))
		dist := distuv.Uniform{Min: -eps, Max: eps, Src: src}
		for i := b.start; i < b.start+b.size(); i++ {
			weights[i] = dist.Rand()
		}
	}
	return weights
}

// view reinterprets one block of the flat vector as its rows×cols weight
// matrix. The returned matrix shares the vector's backing storage; the flat
// vector stays the single source of truth.
func (b layerBlock) view(params []float64) *mat.Dense {
	return mat.NewDense(b.rows, b.cols, params[b.start:b.start+b.size()])
}

// Topology returns a copy of the layer sizes.
func (net *NeuralNet) Topology() []int {
	return append([]int(nil), net.topology...)
}

// Parameters returns a copy of the flat weight vector, or nil if the
// network has not been trained.
func (net *NeuralNet) Parameters() []float64 {
	if !net.trained {
		return nil
	}
	return append([]float64(nil), net.weights...)
}

// Train fits the network to the given row-per-example inputs and targets by
// handing itself to the configured optimizer, starting from the current
// weights. Shape violations are rejected before any propagation work.
func (net *NeuralNet) Train(inputs, targets mat.Matrix) error {
	if err := net.checkColumns("nn train", "input columns", inputs, net.topology[0]); err != nil {
		return err
	}
	if err := net.checkColumns("nn train", "target columns", targets, net.topology[len(net.topology)-1]); err != nil {
		return err
	}
	inRows, _ := inputs.Dims()
	tgRows, _ := targets.Dims()
	if inRows != tgRows {
		return &model.DimensionError{Op: "nn train", Dim: "target rows", Want: inRows, Got: tgRows}
	}

	net.weights = net.method.Optimize(net, net.weights, inputs, targets)
	net.trained = true
	return nil
}

// Predict runs forward propagation against the stored weights. It fails
// with model.ErrNotTrained before the first successful Train.
func (net *NeuralNet) Predict(inputs mat.Matrix) (mat.Matrix, error) {
	if !net.trained {
		return nil, model.ErrNotTrained
	}
	if err := net.checkColumns("nn predict", "input columns", inputs, net.topology[0]); err != nil {
		return nil, err
	}
	return net.forwardProp(net.weights, inputs), nil
}

func (net *NeuralNet) checkColumns(op, dim string, m mat.Matrix, want int) error {
	_, cols := m.Dims()
	if cols != want {
		return &model.DimensionError{Op: op, Dim: dim, Want: want, Got: cols}
	}
	return nil
}

// forwardProp propagates an N×inputs batch through every layer: augment
// with the bias column, multiply by the layer's weight view, activate.
func (net *NeuralNet) forwardProp(params []float64, inputs mat.Matrix) *mat.Dense {
	a := addBiasColumn(inputs)
	var out *mat.Dense
	for l, b := range net.blocks {
		z := dot(a, b.view(params))
		out = apply(net.criterion.Activation.Apply, z)
		if l < len(net.blocks)-1 {
			a = addBiasColumn(out)
		}
	}
	return out
}

// ComputeGrad implements optim.Optimizable: one forward pass that caches the
// bias-augmented activation entering each layer and the pre-activation
// leaving it, then layer-wise backward error propagation. Gradient blocks
// are laid out in exactly the order layerOffsets assigns to the parameters.
func (net *NeuralNet) ComputeGrad(params []float64, inputs, targets mat.Matrix) (float64, []float64) {
	layers := len(net.blocks)
	augmented := make([]*mat.Dense, layers)
	preActs := make([]*mat.Dense, layers)

	a := addBiasColumn(inputs)
	for l, b := range net.blocks {
		augmented[l] = a
		preActs[l] = dot(a, b.view(params))
		if l < layers-1 {
			a = addBiasColumn(apply(net.criterion.Activation.Apply, preActs[l]))
		}
	}
	outputs := apply(net.criterion.Activation.Apply, preActs[layers-1])

	deltas := make([]*mat.Dense, layers)
	costGrad := net.criterion.Cost.Grad(outputs, targets)
	deltas[layers-1] = multiply(costGrad, apply(net.criterion.Activation.Grad, preActs[layers-1]))
	for l := layers - 2; l >= 0; l-- {
		back := dot(deltas[l+1], net.blocks[l+1].view(params).T())
		g := apply(net.criterion.Activation.Grad, addBiasColumn(preActs[l]))
		deltas[l] = stripBiasColumn(multiply(back, g))
	}

	rows, _ := inputs.Dims()
	grad := make([]float64, len(params))
	for l, b := range net.blocks {
		block := dot(augmented[l].T(), deltas[l])
		dst := grad[b.start : b.start+b.size()]
		for i, v := range block.RawMatrix().Data {
			dst[i] = v / float64(rows)
		}
	}

	return net.criterion.Cost.Cost(outputs, targets), grad
}
