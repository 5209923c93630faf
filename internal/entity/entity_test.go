package entity

import (
	"errors"
	"testing"

	"emoji-city/assets"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewEntityIsInactive(t *testing.T) {
	e := New(Building, NewHeadless())
	if e.Active() {
		t.Fatal("new entity must be inactive")
	}
	if e.Handle() != NilHandle {
		t.Fatalf("new entity handle = %d; want NilHandle", e.Handle())
	}
	if e.Label() != "BUILDING" {
		t.Errorf("label = %q; want BUILDING", e.Label())
	}
}

func TestActivateRequestsHandle(t *testing.T) {
	r := NewHeadless()
	e := New(Vehicle, r)
	if err := e.Activate(mgl64.Vec2{3.5, 7}); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !e.Active() {
		t.Fatal("entity should be active after Activate")
	}
	if e.Handle() == NilHandle {
		t.Fatal("active entity must own a handle")
	}
	if p := e.Position(); p.X() != 3.5 || p.Y() != 7 {
		t.Errorf("position = %v; want (3.5,7)", p)
	}
	if r.Live() != 1 {
		t.Errorf("live handles = %d; want 1", r.Live())
	}
}

func TestActivateTwiceIsRejected(t *testing.T) {
	r := NewHeadless()
	e := New(Citizen, r)
	if err := e.Activate(mgl64.Vec2{1, 1}); err != nil {
		t.Fatalf("first Activate: %v", err)
	}
	h := e.Handle()
	err := e.Activate(mgl64.Vec2{9, 9})
	if !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("second Activate err = %v; want ErrAlreadyActive", err)
	}
	if e.Handle() != h {
		t.Error("rejected Activate must not replace the handle")
	}
	if p := e.Position(); p.X() != 1 || p.Y() != 1 {
		t.Errorf("rejected Activate moved the entity to %v", p)
	}
	if r.Live() != 1 {
		t.Errorf("live handles = %d; want 1", r.Live())
	}
}

func TestRecycleIsIdempotent(t *testing.T) {
	r := NewHeadless()
	e := New(Building, r)
	_ = e.Activate(mgl64.Vec2{0, 0})

	e.Recycle()
	e.Recycle()

	if e.Active() {
		t.Error("entity should be inactive after Recycle")
	}
	if e.Handle() != NilHandle {
		t.Error("handle should be cleared after Recycle")
	}
	if r.Live() != 0 {
		t.Errorf("live handles = %d; want 0", r.Live())
	}
}

func TestRecycledEntityCanBeReactivated(t *testing.T) {
	e := New(Vehicle, nil)
	_ = e.Activate(mgl64.Vec2{1, 2})
	e.Recycle()
	if err := e.Activate(mgl64.Vec2{4, 5}); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if !e.Active() || e.Handle() == NilHandle {
		t.Fatal("reactivated entity must be active with a handle")
	}
}

func TestKindCatalogOrder(t *testing.T) {
	if len(assets.Kinds) != len(Kinds()) {
		t.Fatalf("catalog has %d kinds; want %d", len(assets.Kinds), len(Kinds()))
	}
	for _, k := range Kinds() {
		if assets.Kinds[k].ID != k.String() {
			t.Errorf("catalog[%d].ID = %q; want %q", k, assets.Kinds[k].ID, k.String())
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseKind(" Vehicle "); err != nil || got != Vehicle {
		t.Errorf("ParseKind is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseKind("tram"); err == nil {
		t.Error("ParseKind(tram) should fail")
	}
}

func TestKindText(t *testing.T) {
	b, err := Citizen.MarshalText()
	if err != nil || string(b) != "citizen" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var k Kind
	if err := k.UnmarshalText([]byte("building")); err != nil || k != Building {
		t.Fatalf("UnmarshalText = %v, %v", k, err)
	}
	if _, err := Kind(42).MarshalText(); err == nil {
		t.Error("invalid kind should not marshal")
	}
}
