// Package dataset loads row-per-example training data from CSV files into
// dense matrices.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Load reads a CSV file where each record carries inputCols input values
// followed by targetCols target values, and returns the two matrices.
func Load(filename string, inputCols, targetCols int) (inputs, targets *mat.Dense, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer file.Close()

	var inputData, targetData []float64
	rows := 0

	r := csv.NewReader(bufio.NewReader(file))
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading record: %w", err)
		}
		if len(record) != inputCols+targetCols {
			return nil, nil, fmt.Errorf("record %d has %d fields, expected %d", rows+1, len(record), inputCols+targetCols)
		}

		for i, field := range record {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing record %d field %d: %w", rows+1, i+1, err)
			}
			if i < inputCols {
				inputData = append(inputData, x)
			} else {
				targetData = append(targetData, x)
			}
		}
		rows++
	}

	if rows == 0 {
		return nil, nil, fmt.Errorf("dataset %s is empty", filename)
	}

	return mat.NewDense(rows, inputCols, inputData), mat.NewDense(rows, targetCols, targetData), nil
}

// Normalize standardizes every column of m in place to zero mean and unit
// standard deviation. Constant columns are left centered only.
func Normalize(m *mat.Dense) {
	rows, cols := m.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		mean := stat.Mean(col, nil)
		std := stat.StdDev(col, nil)
		for i := 0; i < rows; i++ {
			v := col[i] - mean
			if std > 0 {
				v /= std
			}
			m.Set(i, j, v)
		}
	}
}
