// Package entity defines the poolable city entities and the renderer
// collaborator that gives active entities a visual representation.
package entity

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// ErrAlreadyActive is returned by Activate on an entity that has not been
// recycled since its last activation.
var ErrAlreadyActive = errors.New("entity already active")

// Handle identifies one visual representation owned by an active entity.
type Handle uint64

// NilHandle is the zero value; no live representation has this handle.
const NilHandle Handle = 0

// Renderer creates and destroys visual representations of entities.
type Renderer interface {
	Create(kind Kind, label string, pos mgl64.Vec2) Handle
	Destroy(h Handle)
}

// Entity is one poolable city object. Its kind and label never change;
// position and handle are only meaningful while it is active.
type Entity struct {
	id       uuid.UUID
	kind     Kind
	label    string
	pos      mgl64.Vec2
	active   bool
	handle   Handle
	renderer Renderer
}

// New creates an inactive entity of the given kind drawn through r.
// A nil r gets a private Headless renderer.
func New(kind Kind, r Renderer) *Entity {
	if r == nil {
		r = NewHeadless()
	}
	return &Entity{
		id:       uuid.New(),
		kind:     kind,
		label:    kind.Label(),
		renderer: r,
	}
}

func (e *Entity) ID() uuid.UUID        { return e.id }
func (e *Entity) Kind() Kind           { return e.kind }
func (e *Entity) Label() string        { return e.label }
func (e *Entity) Position() mgl64.Vec2 { return e.pos }
func (e *Entity) Active() bool         { return e.active }
func (e *Entity) Handle() Handle       { return e.handle }

// Activate places the entity at pos and requests a representation for it.
// The entity must be freshly created or recycled.
func (e *Entity) Activate(pos mgl64.Vec2) error {
	if e.active {
		return ErrAlreadyActive
	}
	e.active = true
	e.pos = pos
	e.handle = e.renderer.Create(e.kind, e.label, pos)
	return nil
}

// Recycle releases the representation and marks the entity inactive.
// Calling it on an inactive entity is a no-op.
func (e *Entity) Recycle() {
	if e.handle != NilHandle {
		e.renderer.Destroy(e.handle)
	}
	e.active = false
	e.handle = NilHandle
}
