package fibheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rogpeppe/containers/fibheap"
)

func less(a, b int) bool { return a < b }

func TestPushPopSortedDrain(t *testing.T) {
	xs := []int{11, 3, 15, 1, 8, 13, 16, 2, 6, 9, 12, 14, 4, 7, 10, 5}
	h := fibheap.New(less)
	for _, x := range xs {
		h.Push(x)
	}
	var got []int
	for !h.IsEmpty() {
		got = append(got, h.Pop())
	}
	want := append([]int(nil), xs...)
	sort.Ints(want)
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drain[%d] = %d; want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPeekMatchesMin(t *testing.T) {
	h := fibheap.New(less)
	rnd := rand.New(rand.NewSource(1))
	var all []int
	for i := 0; i < 200; i++ {
		v := rnd.Intn(10000)
		all = append(all, v)
		h.Push(v)
		m := all[0]
		for _, x := range all {
			if x < m {
				m = x
			}
		}
		if got := h.Peek(); got != m {
			t.Fatalf("Peek = %d; want %d", got, m)
		}
	}
}

func TestMerge(t *testing.T) {
	a := fibheap.New(less)
	b := fibheap.New(less)
	for _, x := range []int{5, 1, 9} {
		a.Push(x)
	}
	for _, x := range []int{3, 7, 2} {
		b.Push(x)
	}
	a.Merge(b)
	if !b.IsEmpty() {
		t.Fatal("Merge should drain b")
	}
	if a.Len() != 6 {
		t.Fatalf("Len = %d; want 6", a.Len())
	}
	var got []int
	for !a.IsEmpty() {
		got = append(got, a.Pop())
	}
	want := []int{1, 2, 3, 5, 7, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged drain = %v; want %v", got, want)
		}
	}
}

func TestEmptyPanics(t *testing.T) {
	h := fibheap.New(less)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Pop of empty heap")
		}
	}()
	h.Pop()
}
