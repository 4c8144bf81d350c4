// mlkit-train: Standalone single-process trainer
//
// Usage:
//
//	mlkit-train --topology="2 8 1" --optimizer=sgd --epochs=50 --lr=0.1
//	mlkit-train --model=logistic --data=train.csv --inputs=2 --iters=500
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"mlkit/dataset"
	"mlkit/fn"
	"mlkit/logistic"
	"mlkit/model"
	"mlkit/nn"
	"mlkit/optim"
	"mlkit/utils"
)

var (
	modelType    = flag.String("model", "nn", "Model type: nn, logistic")
	topologyStr  = flag.String("topology", "2 8 1", "Layer sizes, input through output")
	activation   = flag.String("activation", "sigmoid", "Activation: sigmoid, tanh, relu, linear")
	cost         = flag.String("cost", "crossentropy", "Cost: crossentropy, meansquared")
	optimizer    = flag.String("optimizer", "sgd", "Optimizer: gd, sgd")
	learningRate = flag.Float64("lr", 0.1, "Learning rate")
	iters        = flag.Int("iters", 100, "Iterations for batch gradient descent")
	epochs       = flag.Int("epochs", 20, "Epochs for stochastic gradient descent")
	batchSize    = flag.Int("batch", 32, "Minibatch size for stochastic gradient descent")
	seed         = flag.Int64("seed", 42, "Random seed")
	dataPath     = flag.String("data", "", "Training CSV (inputs then targets per record); empty uses synthetic blobs")
	inputCols    = flag.Int("inputs", 2, "Input column count in the CSV")
	targetCols   = flag.Int("targets", 1, "Target column count in the CSV")
	samples      = flag.Int("samples", 200, "Number of synthetic samples")
	verbose      = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mlkit-train: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	topology, err := utils.ParseTopology(*topologyStr)
	if err != nil {
		return fmt.Errorf("parsing topology: %w", err)
	}
	config := &utils.Config{
		Topology:     topology,
		DataPath:     *dataPath,
		BatchSize:    *batchSize,
		Epochs:       *epochs,
		LearningRate: *learningRate,
		Optimizer:    *optimizer,
	}
	if err := utils.ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Println("mlkit trainer")
	fmt.Printf("  Model:         %s\n", *modelType)
	fmt.Printf("  Topology:      %v\n", topology)
	fmt.Printf("  Criterion:     %s/%s\n", *activation, *cost)
	fmt.Printf("  Optimizer:     %s\n", *optimizer)
	fmt.Printf("  Learning rate: %.4f\n", *learningRate)
	fmt.Printf("  Seed:          %d\n", *seed)
	fmt.Println()

	stats := &utils.TimingStats{}
	start := time.Now()

	loadStart := time.Now()
	inputs, targets, err := loadData(topology)
	if err != nil {
		return err
	}
	stats.DataLoadingTime = time.Since(loadStart)
	rows, _ := inputs.Dims()
	fmt.Printf("Loaded %d training examples\n", rows)

	initStart := time.Now()
	m, costFn, err := buildModel(topology)
	if err != nil {
		return err
	}
	stats.ModelInitTime = time.Since(initStart)

	trainStart := time.Now()
	if err := m.Train(inputs, targets); err != nil {
		var dimErr *model.DimensionError
		if errors.As(err, &dimErr) {
			return fmt.Errorf("data does not fit the model: %w", err)
		}
		return fmt.Errorf("training: %w", err)
	}
	stats.TrainingTime = time.Since(trainStart)

	evalStart := time.Now()
	finalCost, accuracy, err := evaluate(m, costFn, inputs, targets)
	if err != nil {
		return fmt.Errorf("evaluating: %w", err)
	}
	stats.EvaluationTime = time.Since(evalStart)
	stats.TotalTime = time.Since(start)

	fmt.Printf("Final training cost: %.6f\n", finalCost)
	fmt.Printf("Training accuracy: %.2f%%\n", accuracy)
	utils.PrintTimingStats(stats)
	return nil
}

func loadData(topology []int) (inputs, targets *mat.Dense, err error) {
	if *dataPath != "" {
		inputs, targets, err = dataset.Load(*dataPath, *inputCols, *targetCols)
		if err != nil {
			return nil, nil, err
		}
		dataset.Normalize(inputs)
		return inputs, targets, nil
	}
	return syntheticBlobs(*samples, topology[0])
}

// syntheticBlobs generates a separable two-class problem: class 0 centered
// at -1 in every input dimension, class 1 at +1.
func syntheticBlobs(n, features int) (*mat.Dense, *mat.Dense, error) {
	noise := distuv.Normal{Mu: 0, Sigma: 0.5, Src: xrand.NewSource(uint64(*seed))}
	inputs := mat.NewDense(n, features, nil)
	targets := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		center := -1.0
		if i%2 == 1 {
			center = 1.0
			targets.Set(i, 0, 1)
		}
		for j := 0; j < features; j++ {
			inputs.Set(i, j, center+noise.Rand())
		}
	}
	return inputs, targets, nil
}

func buildModel(topology []int) (model.SupModel, fn.Cost, error) {
	act, ok := fn.ActivationLookup[*activation]
	if !ok {
		return nil, nil, fmt.Errorf("unknown activation %q", *activation)
	}
	costFn, ok := fn.CostLookup[*cost]
	if !ok {
		return nil, nil, fmt.Errorf("unknown cost %q", *cost)
	}

	var method optim.Method
	switch *optimizer {
	case "gd":
		method = optim.GradientDesc{Alpha: *learningRate, Iters: *iters}
	case "sgd":
		method = optim.StochasticGD{
			Alpha:     *learningRate,
			Epochs:    *epochs,
			BatchSize: *batchSize,
			Rng:       rand.New(rand.NewSource(*seed)),
		}
	}

	if *modelType == "logistic" {
		return logistic.New(method), costFn, nil
	}

	criterion := fn.Criterion{Activation: act, Cost: costFn}
	net, err := nn.NewWithSource(topology, criterion, method, xrand.NewSource(uint64(*seed)))
	if err != nil {
		return nil, nil, fmt.Errorf("building network: %w", err)
	}
	return net, costFn, nil
}

// evaluate reports the training-set cost and the thresholded accuracy.
func evaluate(m model.SupModel, costFn fn.Cost, inputs, targets *mat.Dense) (float64, float64, error) {
	outputs, err := m.Predict(inputs)
	if err != nil {
		return 0, 0, err
	}

	rows, cols := targets.Dims()
	var correct float64
	for i := 0; i < rows; i++ {
		hit := true
		for j := 0; j < cols; j++ {
			predicted := outputs.At(i, j) > 0.5
			actual := targets.At(i, j) > 0.5
			if predicted != actual {
				hit = false
				break
			}
		}
		if hit {
			correct++
		}
	}

	return costFn.Cost(outputs, targets), 100 * correct / float64(rows), nil
}
