package tree_test

import (
	"testing"

	"github.com/rogpeppe/containers/tree"
)

func TestTreeMultiMap(t *testing.T) {
	mm := tree.NewTreeMultiMap[string, int]()
	mm.Add("a", 1)
	mm.Add("a", 2)
	mm.Add("b", 3)
	if mm.DistinctSize() != 2 {
		t.Fatalf("DistinctSize = %d; want 2", mm.DistinctSize())
	}
	if mm.TotalSize() != 3 {
		t.Fatalf("TotalSize = %d; want 3", mm.TotalSize())
	}
	eq := func(a, b int) bool { return a == b }
	if !mm.DeleteValue("a", 1, eq) {
		t.Fatal("DeleteValue(a,1) = false")
	}
	if got := mm.ValuesOf("a"); len(got) != 1 || got[0] != 2 {
		t.Fatalf("ValuesOf(a) = %v; want [2]", got)
	}
	if !mm.DeleteValues("b", 3, eq) {
		t.Fatal("DeleteValues(b, 3) = false")
	}
	if mm.HasEntry("b", 3, eq) {
		t.Fatal("HasEntry(b, 3) after DeleteValues = true")
	}
	mm.Add("c", 9)
	mm.Add("c", 9)
	mm.Add("c", 10)
	if !mm.DeleteValues("c", 9, eq) {
		t.Fatal("DeleteValues(c, 9) = false")
	}
	if got := mm.ValuesOf("c"); len(got) != 1 || got[0] != 10 {
		t.Fatalf("ValuesOf(c) after DeleteValues = %v; want [10]", got)
	}
	if mm.HasEntry("c", 9, eq) {
		t.Fatal("HasEntry(c, 9) should be false after removing all copies")
	}
}

func TestTreeMultiSet(t *testing.T) {
	ms := tree.NewTreeMultiSet[string]()
	ms.Add("x", 3)
	ms.Add("x", 2)
	if ms.Count("x") != 5 {
		t.Fatalf("Count(x) = %d; want 5", ms.Count("x"))
	}
	ms.SetCount("x", 1)
	if ms.Count("x") != 1 {
		t.Fatalf("Count(x) after SetCount = %d; want 1", ms.Count("x"))
	}
	if ms.TotalSize() != 1 || ms.DistinctSize() != 1 {
		t.Fatalf("TotalSize=%d DistinctSize=%d; want 1,1", ms.TotalSize(), ms.DistinctSize())
	}
	ms.SetCount("x", 0)
	if ms.DistinctSize() != 0 {
		t.Fatal("SetCount(x,0) should remove x")
	}
}

func TestTreeMultiSetDelete(t *testing.T) {
	ms := tree.NewTreeMultiSet[string]()
	ms.Add("y", 5)
	if !ms.Delete("y", 2) {
		t.Fatal("Delete(y,2) = false")
	}
	if ms.Count("y") != 3 {
		t.Fatalf("Count(y) = %d; want 3", ms.Count("y"))
	}
	if !ms.Delete("y", 10) {
		t.Fatal("Delete(y,10) = false")
	}
	if ms.DistinctSize() != 0 {
		t.Fatal("Delete past zero should remove y")
	}
	if ms.Delete("z", 1) {
		t.Fatal("Delete on absent element should report false")
	}
}

func TestTreeMultiSetInvalidCountPanics(t *testing.T) {
	ms := tree.NewTreeMultiSet[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative count")
		}
	}()
	ms.Add(1, -1)
}

func TestTreeCounter(t *testing.T) {
	c := tree.NewTreeCounter[string]()
	c.Add("views", 5)
	c.Add("views", 3)
	if c.Count("views") != 8 {
		t.Fatalf("Count = %d; want 8", c.Count("views"))
	}
	c.Add("views", -10)
	if c.Count("views") != 0 {
		t.Fatalf("Count after overshooting decrement = %d; want 0", c.Count("views"))
	}
	if c.DistinctSize() != 0 {
		t.Fatal("decrementing to zero should drop the key")
	}
}
