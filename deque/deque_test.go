package deque_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rogpeppe/containers/containerr"
	"github.com/rogpeppe/containers/deque"
)

func TestBucketedRingInvariants(t *testing.T) {
	// spec.md §8 scenario 6.
	d := deque.NewWithBucketSize[int](4)
	for i := 1; i <= 20; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 4; i++ {
		d.PopFront()
	}
	for i := 100; i <= 103; i++ {
		d.PushFront(i)
	}

	if got := d.Front(); got != 103 {
		t.Fatalf("Front() = %d; want 103", got)
	}
	if got := d.Back(); got != 20 {
		t.Fatalf("Back() = %d; want 20", got)
	}
	if got := d.Len(); got != 20 {
		t.Fatalf("Len() = %d; want 20", got)
	}
	if got := d.At(0); got != 103 {
		t.Fatalf("At(0) = %d; want 103", got)
	}
	if got := d.At(d.Len() - 1); got != 20 {
		t.Fatalf("At(Len()-1) = %d; want 20", got)
	}

	seen := map[int]bool{}
	n := 0
	for v := range d.All() {
		if seen[v] {
			t.Fatalf("duplicate element %d in iteration", v)
		}
		seen[v] = true
		n++
	}
	if n != 20 {
		t.Fatalf("iterator yielded %d elements; want 20", n)
	}
}

func TestDequeGrowsAcrossManyBuckets(t *testing.T) {
	d := deque.NewWithBucketSize[int](3)
	for i := 0; i < 200; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 200; i++ {
		if got := d.At(i); got != i {
			t.Fatalf("At(%d) = %d; want %d", i, got, i)
		}
	}
	for i := 0; i < 200; i++ {
		if got := d.PopFront(); got != i {
			t.Fatalf("PopFront #%d = %d; want %d", i, got, i)
		}
	}
	if !d.IsEmpty() {
		t.Fatal("deque should be empty")
	}
}

func TestDequeInsertDeleteAt(t *testing.T) {
	d := deque.New[int]()
	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	d.InsertAt(2, 100)
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{1, 2, 100, 3, 4, 5}) {
		t.Fatalf("after InsertAt: %v", got)
	}
	v := d.DeleteAt(2)
	if v != 100 {
		t.Fatalf("DeleteAt returned %d; want 100", v)
	}
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("after DeleteAt: %v", got)
	}
}

func TestDequeSpliceCutReverseSort(t *testing.T) {
	d := deque.New[int]()
	for _, v := range []int{5, 3, 1, 4, 2} {
		d.PushBack(v)
	}
	d.Sort(func(a, b int) bool { return a < b })
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Sort -> %v", got)
	}
	d.Reverse()
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("Reverse -> %v", got)
	}
	tail := d.Cut(3, true)
	if !reflect.DeepEqual(tail, []int{2, 1}) {
		t.Fatalf("Cut tail = %v; want [2 1]", tail)
	}
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{5, 4, 3}) {
		t.Fatalf("after Cut: %v", got)
	}
	removed, err := d.Splice(1, 1, 40, 41)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if !reflect.DeepEqual(removed, []int{4}) {
		t.Fatalf("Splice removed = %v", removed)
	}
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{5, 40, 41, 3}) {
		t.Fatalf("after Splice: %v", got)
	}
}

func TestDequeSpliceOutOfRangeReturnsError(t *testing.T) {
	d := deque.New[int]()
	d.PushBack(1)
	d.PushBack(2)
	if _, err := d.Splice(1, 5); !errors.Is(err, containerr.IndexOutOfRange) {
		t.Fatalf("Splice out of range: err = %v; want containerr.IndexOutOfRange", err)
	}
}

func TestDequeUniqueAndShrinkToFit(t *testing.T) {
	d := deque.New[int]()
	for _, v := range []int{1, 1, 2, 2, 2, 3, 1} {
		d.PushBack(v)
	}
	removed := d.Unique(func(a, b int) bool { return a == b })
	if removed != 3 {
		t.Fatalf("Unique removed = %d; want 3", removed)
	}
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{1, 2, 3, 1}) {
		t.Fatalf("after Unique: %v", got)
	}
	d.ShrinkToFit()
	if got := d.ToSlice(); !reflect.DeepEqual(got, []int{1, 2, 3, 1}) {
		t.Fatalf("after ShrinkToFit: %v", got)
	}
}

func TestDequeEmptyPanics(t *testing.T) {
	d := deque.New[int]()
	mustPanic(t, func() { d.PopFront() })
	mustPanic(t, func() { d.PopBack() })
	mustPanic(t, func() { d.At(0) })
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, got none")
		}
	}()
	f()
}
