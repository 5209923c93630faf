package registry

import "emoji-city/internal/entity"

// State is the aggregate pushed to the view after every mutation.
type State struct {
	Resources int
	Buildings int
	Vehicles  int
	Citizens  int
}

// PoolState is the free/active split of one pool.
type PoolState struct {
	Free   int
	Active int
}

// View observes registry and pool changes. Notifications are synchronous.
type View interface {
	OnStateChanged(s State)
	OnPoolsChanged(pools map[entity.Kind]PoolState)
}

// NopView ignores every notification.
type NopView struct{}

func (NopView) OnStateChanged(State)                     {}
func (NopView) OnPoolsChanged(map[entity.Kind]PoolState) {}
