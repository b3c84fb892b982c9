package matrix_test

import (
	"testing"

	"github.com/rogpeppe/containers/matrix"
)

func TestVector2D(t *testing.T) {
	a := matrix.Vector2D[float64]{X: 1, Y: 2}
	b := matrix.Vector2D[float64]{X: 3, Y: -1}
	if got := a.Add(b); got != (matrix.Vector2D[float64]{X: 4, Y: 1}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != (matrix.Vector2D[float64]{X: -2, Y: 3}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (matrix.Vector2D[float64]{X: 2, Y: 4}) {
		t.Fatalf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Fatalf("Dot = %v; want 1", got)
	}
}

func TestMatrix2DSetAtTranspose(t *testing.T) {
	m := matrix.NewMatrix2D[int](2, 3)
	vals := [][]int{{1, 2, 3}, {4, 5, 6}}
	for r, row := range vals {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	if m.At(1, 2) != 6 {
		t.Fatalf("At(1,2) = %d; want 6", m.At(1, 2))
	}
	tr := m.Transpose()
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("Transpose dims = %dx%d; want 3x2", tr.Rows(), tr.Cols())
	}
	if tr.At(2, 1) != 6 {
		t.Fatalf("Transpose.At(2,1) = %d; want 6", tr.At(2, 1))
	}
}

func TestMatrix2DAddMultiply(t *testing.T) {
	a := matrix.NewMatrix2D[int](2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)

	sum := a.Add(a)
	if sum.At(1, 1) != 8 {
		t.Fatalf("Add self At(1,1) = %d; want 8", sum.At(1, 1))
	}

	identity := matrix.NewMatrix2D[int](2, 2)
	identity.Set(0, 0, 1)
	identity.Set(1, 1, 1)
	product := a.Multiply(identity)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if product.At(r, c) != a.At(r, c) {
				t.Fatalf("Multiply by identity changed (%d,%d)", r, c)
			}
		}
	}
}

func TestMatrix2DOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("At out of range did not panic")
		}
	}()
	m := matrix.NewMatrix2D[int](2, 2)
	m.At(5, 0)
}
