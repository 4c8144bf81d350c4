package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	Topology     []int
	DataPath     string
	BatchSize    int
	Epochs       int
	LearningRate float64
	Optimizer    string
}

// ParseTopology parses a whitespace separated topology string, e.g.
// "784 128 10", into a slice of layer sizes.
func ParseTopology(topologyStr string) ([]int, error) {
	parts := strings.Fields(topologyStr)
	topology := make([]int, len(parts))
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		topology[i] = n
	}
	return topology, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Topology) < 2 {
		return fmt.Errorf("topology must have at least 2 layers (input and output)")
	}
	for i, size := range config.Topology {
		if size < 1 {
			return fmt.Errorf("layer %d must have at least 1 neuron", i)
		}
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	if config.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}

	if config.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive")
	}

	if config.Optimizer != "gd" && config.Optimizer != "sgd" {
		return fmt.Errorf("optimizer must be 'gd' or 'sgd'")
	}

	return nil
}
