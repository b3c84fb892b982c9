package fenwick_test

import (
	"testing"

	"github.com/rogpeppe/containers/fenwick"
)

func TestAddAndPrefixSum(t *testing.T) {
	b := fenwick.New(5)
	b.Add(0, 1)
	b.Add(1, 2)
	b.Add(2, 3)
	b.Add(3, 4)
	b.Add(4, 5)
	if got := b.PrefixSum(5); got != 15 {
		t.Fatalf("PrefixSum(5) = %d; want 15", got)
	}
	if got := b.PrefixSum(0); got != 0 {
		t.Fatalf("PrefixSum(0) = %d; want 0", got)
	}
	if got := b.RangeSum(1, 4); got != 9 {
		t.Fatalf("RangeSum(1,4) = %d; want 9", got)
	}
}

func TestFromSliceAndGet(t *testing.T) {
	b := fenwick.FromSlice([]int64{1, 2, 3, 4, 5})
	if got := b.Get(2); got != 3 {
		t.Fatalf("Get(2) = %d; want 3", got)
	}
	if got := b.RangeSum(0, 5); got != 15 {
		t.Fatalf("RangeSum(0,5) = %d; want 15", got)
	}
}

func TestSetAdjustsDelta(t *testing.T) {
	b := fenwick.FromSlice([]int64{1, 2, 3})
	b.Set(1, 100)
	if got := b.Get(1); got != 100 {
		t.Fatalf("Get(1) after Set = %d; want 100", got)
	}
	if got := b.RangeSum(0, 3); got != 1+100+3 {
		t.Fatalf("RangeSum after Set = %d", got)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add out of range did not panic")
		}
	}()
	b := fenwick.New(3)
	b.Add(3, 1)
}
