package factory

import (
	"emoji-city/internal/entity"
	"emoji-city/internal/pool"
	"emoji-city/internal/registry"
)

// Capacities holds the pool size for each kind.
type Capacities map[entity.Kind]int

// NewEntity returns a pool factory creating inactive entities of one kind
// drawn through r.
func NewEntity(kind entity.Kind, r entity.Renderer) func() *entity.Entity {
	return func() *entity.Entity {
		return entity.New(kind, r)
	}
}

// NewBuilding creates an inactive building.
func NewBuilding(r entity.Renderer) *entity.Entity { return entity.New(entity.Building, r) }

// NewVehicle creates an inactive vehicle.
func NewVehicle(r entity.Renderer) *entity.Entity { return entity.New(entity.Vehicle, r) }

// NewCitizen creates an inactive citizen.
func NewCitizen(r entity.Renderer) *entity.Entity { return entity.New(entity.Citizen, r) }

// Reset is the pool reset function: it recycles the entity's representation.
func Reset(e *entity.Entity) { e.Recycle() }

// NewPool builds the pool for one kind.
func NewPool(kind entity.Kind, r entity.Renderer, capacity int) *pool.Pool[*entity.Entity] {
	return pool.New(NewEntity(kind, r), Reset, capacity)
}

// NewPools builds one pool per kind. Kinds missing from caps get
// pool.DefaultCapacity.
func NewPools(r entity.Renderer, caps Capacities) registry.Pools {
	pools := make(registry.Pools, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		pools[k] = NewPool(k, r, caps[k])
	}
	return pools
}
