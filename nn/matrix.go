package nn

import "gonum.org/v1/gonum/mat"

func dot(m, n mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func multiply(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

// addBiasColumn prepends a column of ones, turning an N×c activation matrix
// into the N×(c+1) bias-augmented input of the next layer.
func addBiasColumn(m mat.Matrix) *mat.Dense {
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

// stripBiasColumn drops the first column. The bias term has no upstream
// error to propagate.
func stripBiasColumn(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c-1, nil)
	for i := 0; i < r; i++ {
		for j := 1; j < c; j++ {
			o.Set(i, j-1, m.At(i, j))
		}
	}
	return o
}
