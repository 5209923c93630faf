// Package registry tracks the active city entities, the counters derived
// from them and the resource balance. It pushes every change to a View.
package registry

import (
	"slices"

	"emoji-city/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// DefaultResources is the starting balance.
const DefaultResources = 1000

// Counts holds the number of active entities per kind.
type Counts struct {
	Buildings int `json:"buildings" yaml:"buildings"`
	Vehicles  int `json:"vehicles" yaml:"vehicles"`
	Citizens  int `json:"citizens" yaml:"citizens"`
}

// Of returns the count for one kind.
func (c Counts) Of(k entity.Kind) int {
	switch k {
	case entity.Building:
		return c.Buildings
	case entity.Vehicle:
		return c.Vehicles
	case entity.Citizen:
		return c.Citizens
	}
	return 0
}

// Total is the number of active entities of every kind.
func (c Counts) Total() int { return c.Buildings + c.Vehicles + c.Citizens }

// Registry is the single manager of active entities.
// It is not safe for concurrent use; all calls happen on the UI goroutine.
type Registry struct {
	active    []*entity.Entity
	counts    Counts
	resources int
	view      View
	log       *zap.Logger
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithResources sets the starting balance.
func WithResources(n int) Option {
	return func(r *Registry) { r.resources = n }
}

// WithView attaches a view at construction.
func WithView(v View) Option {
	return func(r *Registry) {
		if v != nil {
			r.view = v
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates an empty Registry. Most callers should go through a
// Singleton instead so the process holds exactly one.
func New(opts ...Option) *Registry {
	r := &Registry{
		resources: DefaultResources,
		view:      NopView{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.notify()
	return r
}

// SetView replaces the view and pushes the current state to it.
// A nil view detaches the current one.
func (r *Registry) SetView(v View) {
	if v == nil {
		v = NopView{}
	}
	r.view = v
	r.notify()
}

// Add appends e to the active list.
func (r *Registry) Add(e *entity.Entity) {
	r.active = append(r.active, e)
	r.recount()
	r.log.Debug("entity added",
		zap.Stringer("kind", e.Kind()),
		zap.Stringer("id", e.ID()),
		zap.Int("active", len(r.active)))
	r.notify()
}

// Remove drops the first occurrence of e (by identity). Removing an entity
// that is not registered only refreshes the view.
func (r *Registry) Remove(e *entity.Entity) {
	if i := slices.Index(r.active, e); i >= 0 {
		r.active = slices.Delete(r.active, i, i+1)
		r.log.Debug("entity removed",
			zap.Stringer("kind", e.Kind()),
			zap.Stringer("id", e.ID()),
			zap.Int("active", len(r.active)))
	}
	r.recount()
	r.notify()
}

// RecycleAll recycles and deregisters every active entity. It does not
// return them to their pools: the caller releases each entity to its pool
// first, otherwise pool and registry state diverge.
func (r *Registry) RecycleAll() {
	for _, e := range r.active {
		e.Recycle()
	}
	r.log.Debug("recycled all entities", zap.Int("count", len(r.active)))
	r.active = nil
	r.recount()
	r.notify()
}

// Snapshot captures the balance, the counters and the kind and position of
// every active entity in insertion order.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Resources: r.resources,
		Counts:    r.counts,
		Entities:  make([]Record, 0, len(r.active)),
	}
	for _, e := range r.active {
		p := e.Position()
		s.Entities = append(s.Entities, Record{Kind: e.Kind(), X: p.X(), Y: p.Y()})
	}
	return s
}

// Restore replaces the current state with snap. Every active entity is
// recycled and released to its pool, then the recorded entities are replayed
// in order. Entries whose pool has no free entity are dropped; the number of
// entities restored and dropped is returned.
func (r *Registry) Restore(snap Snapshot, pools Pools) (restored, dropped int) {
	for _, e := range r.active {
		e.Recycle()
		pools.Release(e)
	}
	r.active = nil
	r.resources = snap.Resources
	r.recount()

	for _, rec := range snap.Entities {
		e, ok := pools.Acquire(rec.Kind)
		if !ok {
			dropped++
			continue
		}
		if err := e.Activate(mgl64.Vec2{rec.X, rec.Y}); err != nil {
			r.log.Warn("restore: pooled entity was still active",
				zap.Stringer("kind", e.Kind()),
				zap.Stringer("id", e.ID()))
			pools.Release(e)
			dropped++
			continue
		}
		r.Add(e)
		restored++
	}

	if dropped > 0 {
		r.log.Info("restore dropped entities beyond pool capacity",
			zap.Int("restored", restored),
			zap.Int("dropped", dropped))
	}
	r.notify()
	return restored, dropped
}

// Spend debits n from the balance if it can be covered.
func (r *Registry) Spend(n int) bool {
	if n < 0 || r.resources < n {
		return false
	}
	r.resources -= n
	return true
}

// Refund credits n to the balance.
func (r *Registry) Refund(n int) {
	if n > 0 {
		r.resources += n
	}
}

// Refresh pushes the current state to the view.
func (r *Registry) Refresh() { r.notify() }

// State returns the aggregate shown by the view.
func (r *Registry) State() State {
	return State{
		Resources: r.resources,
		Buildings: r.counts.Buildings,
		Vehicles:  r.counts.Vehicles,
		Citizens:  r.counts.Citizens,
	}
}

func (r *Registry) Counts() Counts { return r.counts }
func (r *Registry) Resources() int { return r.resources }
func (r *Registry) Len() int       { return len(r.active) }

// Active returns the active entities in insertion order.
func (r *Registry) Active() []*entity.Entity { return slices.Clone(r.active) }

// ActiveOf returns the active entities of one kind in insertion order.
func (r *Registry) ActiveOf(kind entity.Kind) []*entity.Entity {
	var out []*entity.Entity
	for _, e := range r.active {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// recount derives the counters from the active list.
func (r *Registry) recount() {
	var c Counts
	for _, e := range r.active {
		switch e.Kind() {
		case entity.Building:
			c.Buildings++
		case entity.Vehicle:
			c.Vehicles++
		case entity.Citizen:
			c.Citizens++
		}
	}
	r.counts = c
}

func (r *Registry) notify() {
	r.view.OnStateChanged(r.State())
}
