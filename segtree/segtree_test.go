package segtree_test

import (
	"math"
	"testing"

	"github.com/rogpeppe/containers/matrix"
	"github.com/rogpeppe/containers/segtree"
)

func TestSumQueries(t *testing.T) {
	st := segtree.New([]int{1, 2, 3, 4, 5}, 0, func(a, b int) int { return a + b })
	if got := st.Query(0, 5); got != 15 {
		t.Fatalf("Query(0,5) = %d; want 15", got)
	}
	if got := st.Query(1, 3); got != 5 {
		t.Fatalf("Query(1,3) = %d; want 5", got)
	}
	if got := st.Query(2, 2); got != 0 {
		t.Fatalf("Query(2,2) = %d; want 0", got)
	}
}

func TestPointUpdate(t *testing.T) {
	st := segtree.New([]int{1, 2, 3, 4, 5}, 0, func(a, b int) int { return a + b })
	st.Set(2, 100)
	if got := st.At(2); got != 100 {
		t.Fatalf("At(2) = %d; want 100", got)
	}
	if got := st.Query(0, 5); got != 1+2+100+4+5 {
		t.Fatalf("Query(0,5) after Set = %d", got)
	}
}

func TestMinQueries(t *testing.T) {
	st := segtree.New([]float64{5, 3, 8, 1, 9}, math.Inf(1), math.Min)
	if got := st.Query(0, 5); got != 1 {
		t.Fatalf("min Query(0,5) = %v; want 1", got)
	}
	if got := st.Query(0, 2); got != 3 {
		t.Fatalf("min Query(0,2) = %v; want 3", got)
	}
}

func TestBuildFromMatrixRow(t *testing.T) {
	m := matrix.NewMatrix2D[int](2, 5)
	for c, v := range []int{1, 2, 3, 4, 5} {
		m.Set(1, c, v)
	}
	st := segtree.New(m.Row(1), 0, func(a, b int) int { return a + b })
	if got := st.Query(0, 5); got != 15 {
		t.Fatalf("Query(0,5) over matrix row = %d; want 15", got)
	}
}

func TestQueryOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Query with bad range did not panic")
		}
	}()
	st := segtree.New([]int{1, 2, 3}, 0, func(a, b int) int { return a + b })
	st.Query(-1, 2)
}
