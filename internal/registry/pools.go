package registry

import (
	"emoji-city/internal/entity"
	"emoji-city/internal/pool"
)

// Pools maps each kind to the pool its entities come from.
type Pools map[entity.Kind]*pool.Pool[*entity.Entity]

// Acquire takes a free entity of the given kind. ok is false when the kind
// has no pool or its pool is exhausted.
func (ps Pools) Acquire(kind entity.Kind) (*entity.Entity, bool) {
	p, found := ps[kind]
	if !found {
		return nil, false
	}
	return p.Acquire()
}

// Release returns e to the pool matching its kind.
func (ps Pools) Release(e *entity.Entity) bool {
	p, found := ps[e.Kind()]
	if !found {
		return false
	}
	return p.Release(e)
}

// States reports the free/active split of every pool.
func (ps Pools) States() map[entity.Kind]PoolState {
	out := make(map[entity.Kind]PoolState, len(ps))
	for k, p := range ps {
		out[k] = PoolState{Free: p.FreeCount(), Active: p.ActiveCount()}
	}
	return out
}
