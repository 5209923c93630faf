// Package city turns player actions into pool, entity and registry
// operations using the price and refund rules.
package city

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"emoji-city/internal/entity"
	"emoji-city/internal/registry"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var (
	ErrInsufficientResources = errors.New("not enough resources")
	ErrAtCapacity            = errors.New("pool at capacity")
	ErrNoneActive            = errors.New("none active")
	ErrNoSnapshot            = errors.New("no saved state")
)

// Controller applies player actions. Every action runs to completion in the
// order pool → entity → registry → view.
type Controller struct {
	reg     *registry.Registry
	pools   registry.Pools
	view    registry.View
	rules   Rules
	area    mgl64.Vec2
	rng     *rand.Rand
	format  registry.Format
	memento []byte // encoded snapshot; nil until the first Save
	log     *zap.Logger
	stats   Stats
}

// Option configures a Controller.
type Option func(*Controller)

func WithRules(r Rules) Option { return func(c *Controller) { c.rules = r } }

// WithArea sets the size of the city area new entities are placed in.
func WithArea(width, height float64) Option {
	return func(c *Controller) { c.area = mgl64.Vec2{width, height} }
}

func WithRand(rng *rand.Rand) Option { return func(c *Controller) { c.rng = rng } }

// WithSnapshotFormat selects how the saved state is encoded in memory.
func WithSnapshotFormat(f registry.Format) Option {
	return func(c *Controller) { c.format = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Controller and pushes the initial pool states to view.
func New(reg *registry.Registry, pools registry.Pools, view registry.View, opts ...Option) *Controller {
	if view == nil {
		view = registry.NopView{}
	}
	c := &Controller{
		reg:   reg,
		pools: pools,
		view:  view,
		rules: DefaultRules(),
		area:  mgl64.Vec2{30, 12},
		log:   zap.NewNop(),
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.stats.StartResources = reg.Resources()
	c.pushPools()
	return c
}

// Add buys one entity of kind k and places it at a random position.
// Nothing changes when the balance is too low or the pool is exhausted.
func (c *Controller) Add(k entity.Kind) (*entity.Entity, error) {
	price := c.rules.Price(k)
	if c.reg.Resources() < price {
		return nil, fmt.Errorf("add %s: %w (need %d, have %d)", k, ErrInsufficientResources, price, c.reg.Resources())
	}
	e, ok := c.pools.Acquire(k)
	if !ok {
		return nil, fmt.Errorf("add %s: %w", k, ErrAtCapacity)
	}
	c.reg.Spend(price)
	if err := e.Activate(c.randomPosition()); err != nil {
		// Pooled entities are inactive; undo the purchase if one is not.
		c.reg.Refund(price)
		c.pools.Release(e)
		return nil, fmt.Errorf("add %s: %w", k, err)
	}
	c.reg.Add(e)
	c.pushPools()

	c.stats.Added[k.String()]++
	c.stats.Spent += price
	c.stats.observe(c.reg.Len())
	c.log.Info("entity added",
		zap.Stringer("kind", k),
		zap.Stringer("id", e.ID()),
		zap.Int("price", price),
		zap.Int("resources", c.reg.Resources()))
	return e, nil
}

// Remove returns the most recently added entity of kind k to its pool and
// refunds part of its price.
func (c *Controller) Remove(k entity.Kind) error {
	active := c.reg.ActiveOf(k)
	if len(active) == 0 {
		return fmt.Errorf("remove %s: %w", k, ErrNoneActive)
	}
	e := active[len(active)-1]
	refund := c.rules.Refund(k)
	c.reg.Refund(refund)
	c.pools.Release(e)
	c.reg.Remove(e)
	c.pushPools()

	c.stats.Removed[k.String()]++
	c.stats.Refunded += refund
	c.log.Info("entity removed",
		zap.Stringer("kind", k),
		zap.Stringer("id", e.ID()),
		zap.Int("refund", refund),
		zap.Int("resources", c.reg.Resources()))
	return nil
}

// RecycleAll returns every active entity to its pool, credits the refunds
// and clears the registry. It returns the total refund.
func (c *Controller) RecycleAll() int {
	active := c.reg.Active()
	total := 0
	for _, e := range active {
		total += c.rules.Refund(e.Kind())
	}
	for _, e := range active {
		c.pools.Release(e)
	}
	c.reg.Refund(total)
	c.reg.RecycleAll()
	c.pushPools()

	c.stats.Recycled += len(active)
	c.stats.Refunded += total
	c.log.Info("recycled all", zap.Int("count", len(active)), zap.Int("refund", total))
	return total
}

// Save captures the registry state, replacing any earlier save.
func (c *Controller) Save() error {
	data, err := registry.Encode(c.reg.Snapshot(), c.format)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	c.memento = data
	c.stats.Saves++
	c.log.Info("state saved", zap.Stringer("format", c.format), zap.Int("bytes", len(data)))
	return nil
}

// HasSnapshot reports whether Save has been called.
func (c *Controller) HasSnapshot() bool { return c.memento != nil }

// Restore replaces the current state with the last save. Entities that no
// longer fit in their pools are dropped; dropped reports how many.
func (c *Controller) Restore() (restored, dropped int, err error) {
	if c.memento == nil {
		return 0, 0, ErrNoSnapshot
	}
	snap, err := registry.Decode(c.memento, c.format)
	if err != nil {
		return 0, 0, fmt.Errorf("restore: %w", err)
	}
	restored, dropped = c.reg.Restore(snap, c.pools)
	c.pushPools()

	c.stats.Restores++
	c.stats.observe(c.reg.Len())
	c.log.Info("state restored",
		zap.Int("restored", restored),
		zap.Int("dropped", dropped),
		zap.Int("resources", c.reg.Resources()))
	return restored, dropped, nil
}

// CheckSingleton fetches the registry twice from s and reports whether both
// calls returned the same instance.
func (c *Controller) CheckSingleton(s *registry.Singleton) bool {
	a, b := s.Get(), s.Get()
	same := a == b
	c.log.Info("singleton check", zap.Bool("same", same), zap.Bool("controller", a == c.reg))
	return same
}

// Registry returns the registry the controller drives.
func (c *Controller) Registry() *registry.Registry { return c.reg }

// Pools returns the pools the controller draws from.
func (c *Controller) Pools() registry.Pools { return c.pools }

// Rules returns the price and refund rules.
func (c *Controller) Rules() Rules { return c.rules }

// Stats returns the session statistics gathered so far.
func (c *Controller) Stats() Stats {
	s := c.stats.clone()
	s.EndResources = c.reg.Resources()
	return s
}

func (c *Controller) randomPosition() mgl64.Vec2 {
	w := max(c.area.X()-1, 0)
	h := max(c.area.Y()-1, 0)
	return mgl64.Vec2{c.rng.Float64() * w, c.rng.Float64() * h}
}

func (c *Controller) pushPools() {
	c.view.OnPoolsChanged(c.pools.States())
}
