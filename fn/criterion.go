// Package fn holds the activation and cost strategies a network trains
// against, paired into a Criterion.
package fn

// Criterion pairs an activation strategy with a cost strategy. It is an
// immutable value, shared across every gradient evaluation of one model.
type Criterion struct {
	Activation Activation
	Cost       Cost
}

// BCE is the binary cross entropy criterion: sigmoid activation with
// cross-entropy cost.
func BCE() Criterion {
	return Criterion{Activation: Sigmoid{}, Cost: CrossEntropy{}}
}

// MSE is the mean squared error criterion: linear activation with mean
// squared error cost.
func MSE() Criterion {
	return Criterion{Activation: Linear{}, Cost: MeanSquared{}}
}

func (c Criterion) String() string {
	return c.Activation.String() + "/" + c.Cost.String()
}
