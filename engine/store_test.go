package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore[component.TransformComponent]()
	e := core.Entity(3)

	if _, ok := s.Get(e); ok {
		t.Fatal("Expected miss on empty store")
	}

	s.Set(e, component.TransformComponent{Translation: vmath.V2(1, 2)})
	s.Set(e, component.TransformComponent{Translation: vmath.V2(3, 4)})

	got, ok := s.Get(e)
	if !ok {
		t.Fatal("Expected hit after Set")
	}
	if got.Translation != vmath.V2(3, 4) {
		t.Errorf("Expected overwritten translation, got %v", got.Translation)
	}
	if s.Count() != 1 {
		t.Errorf("Expected count 1 after overwrite, got %d", s.Count())
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore[component.BallComponent]()
	e := core.Entity(1)

	if s.Update(e, func(b *component.BallComponent) { b.XChange = -1 }) {
		t.Error("Expected Update to report missing entity")
	}

	s.Set(e, component.NewBall())
	if !s.Update(e, func(b *component.BallComponent) { b.XChange = -1 }) {
		t.Fatal("Expected Update to succeed")
	}
	if b, _ := s.Get(e); b.XChange != -1 || b.YChange != 1 {
		t.Errorf("Expected (-1, 1) multipliers, got (%v, %v)", b.XChange, b.YChange)
	}
}

// TestStoreOrder verifies insertion order survives removal
func TestStoreOrder(t *testing.T) {
	s := NewStore[component.WallComponent]()
	for _, e := range []core.Entity{5, 2, 9, 4} {
		s.Set(e, component.WallComponent{})
	}
	s.Remove(2)
	s.Remove(42)

	want := []core.Entity{5, 9, 4}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if s.Has(2) {
		t.Error("Removed entity still present")
	}

	// All returns a copy
	got[0] = 100
	if s.All()[0] != 5 {
		t.Error("All exposed internal slice")
	}

	s.Clear()
	if s.Count() != 0 || s.Has(5) {
		t.Error("Expected empty store after Clear")
	}
}
