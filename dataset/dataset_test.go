package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "dataset_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, "1.0,2.0,0\n3.0,4.0,1\n5.5,6.5,1\n")

	inputs, targets, err := Load(path, 2, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	r, c := inputs.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("inputs are %dx%d, want 3x2", r, c)
	}
	r, c = targets.Dims()
	if r != 3 || c != 1 {
		t.Fatalf("targets are %dx%d, want 3x1", r, c)
	}

	if inputs.At(2, 1) != 6.5 {
		t.Errorf("inputs[2,1] = %f, want 6.5", inputs.At(2, 1))
	}
	if targets.At(0, 0) != 0 || targets.At(1, 0) != 1 {
		t.Errorf("targets = [%f %f ...], want [0 1 ...]", targets.At(0, 0), targets.At(1, 0))
	}
}

func TestLoadFieldCountMismatch(t *testing.T) {
	path := writeCSV(t, "1.0,2.0\n")
	if _, _, err := Load(path, 2, 1); err == nil {
		t.Error("expected error for short record")
	}
}

func TestLoadBadValue(t *testing.T) {
	path := writeCSV(t, "1.0,x,0\n")
	if _, _, err := Load(path, 2, 1); err == nil {
		t.Error("expected error for non-numeric field")
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeCSV(t, "")
	if _, _, err := Load(path, 2, 1); err == nil {
		t.Error("expected error for empty dataset")
	}
}

func TestLoadNotFound(t *testing.T) {
	if _, _, err := Load("/nonexistent/data.csv", 2, 1); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestNormalize(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		1, 5,
		3, 5,
	})
	Normalize(m)

	// sample std of {1,3} is sqrt(2), so the column standardizes to +-1/sqrt(2)
	want := 1 / math.Sqrt2
	if math.Abs(m.At(0, 0)+want) > 1e-12 || math.Abs(m.At(1, 0)-want) > 1e-12 {
		t.Errorf("column 0 = [%f %f], want [%f %f]", m.At(0, 0), m.At(1, 0), -want, want)
	}

	// constant column is centered only
	if m.At(0, 1) != 0 || m.At(1, 1) != 0 {
		t.Errorf("constant column = [%f %f], want [0 0]", m.At(0, 1), m.At(1, 1))
	}
}
