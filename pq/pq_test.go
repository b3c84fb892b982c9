package pq_test

import (
	"reflect"
	"testing"

	"github.com/rogpeppe/containers/pq"
)

func TestMaxPriorityQueueOrdering(t *testing.T) {
	type item struct{ key int }
	items := []item{{1}, {6}, {5}, {2}, {0}, {9}}
	q := pq.NewMax(func(a, b item) bool { return a.key < b.key })
	for _, it := range items {
		q.Add(it)
	}
	var got []int
	for q.Len() > 0 {
		got = append(got, q.Poll().key)
	}
	want := []int{9, 6, 5, 2, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("drain order = %v; want %v", got, want)
	}
}

func TestMinOrderedAndHeapify(t *testing.T) {
	q := pq.Heapify([]int{9, 1, 7, 3, 5}, func(a, b int) bool { return a < b })
	if got := q.Peek(); got != 1 {
		t.Fatalf("Peek = %d; want 1", got)
	}
	eq := func(a, b int) bool { return a == b }
	if !q.Has(7, eq) {
		t.Fatal("Has(7) = false; want true")
	}
	sorted := q.Sort()
	if !reflect.DeepEqual(sorted, []int{1, 3, 5, 7, 9}) {
		t.Fatalf("Sort = %v", sorted)
	}
	if q.Len() != 5 {
		t.Fatalf("Sort mutated queue: Len = %d", q.Len())
	}
}

func TestNewMinOrderedDrain(t *testing.T) {
	q := pq.NewMinOrdered[int]()
	for _, x := range []int{5, 1, 9, 3} {
		q.Add(x)
	}
	var got []int
	for !q.IsEmpty() {
		got = append(got, q.Poll())
	}
	want := []int{1, 3, 5, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("drain = %v; want %v", got, want)
	}
}

func TestLeafAndClear(t *testing.T) {
	q := pq.NewMinOrdered[int]()
	for _, x := range []int{4, 2, 8, 1} {
		q.Add(x)
	}
	_ = q.Leaf()
	q.Clear()
	if !q.IsEmpty() {
		t.Fatal("Clear did not empty the queue")
	}
}
