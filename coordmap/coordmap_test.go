package coordmap_test

import "testing"
import "github.com/rogpeppe/containers/coordmap"

func TestCoordMapBasics(t *testing.T) {
	m := coordmap.New[string]()
	m.Set(coordmap.Point{X: 1, Y: 2}, "a")
	m.Set(coordmap.Point{X: -1, Y: 2}, "b")
	if v, ok := m.Get(coordmap.Point{X: 1, Y: 2}); !ok || v != "a" {
		t.Fatalf("Get(1,2) = %q,%v; want a,true", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d; want 2", m.Len())
	}
	if !m.Delete(coordmap.Point{X: -1, Y: 2}) {
		t.Fatal("Delete(-1,2) = false")
	}
	if m.Has(coordmap.Point{X: -1, Y: 2}) {
		t.Fatal("Has(-1,2) after delete = true")
	}
}

func TestCoordSetAndJoint(t *testing.T) {
	s := coordmap.NewSetWithJoint(":")
	if !s.Add(coordmap.Point{X: 3, Y: 4}) {
		t.Fatal("Add should report newly added")
	}
	if s.Add(coordmap.Point{X: 3, Y: 4}) {
		t.Fatal("re-Add should report false")
	}
	if !s.Has(coordmap.Point{X: 3, Y: 4}) {
		t.Fatal("Has should be true after Add")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d; want 1", s.Len())
	}
}
