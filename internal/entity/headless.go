package entity

import "github.com/go-gl/mathgl/mgl64"

// Headless is a Renderer that draws nothing. It hands out sequential
// handles and remembers which ones are live.
type Headless struct {
	next Handle
	live map[Handle]Kind
}

// NewHeadless returns an empty Headless renderer.
func NewHeadless() *Headless {
	return &Headless{live: make(map[Handle]Kind)}
}

func (h *Headless) Create(kind Kind, _ string, _ mgl64.Vec2) Handle {
	h.next++
	h.live[h.next] = kind
	return h.next
}

func (h *Headless) Destroy(handle Handle) {
	delete(h.live, handle)
}

// Live returns the number of handles created and not yet destroyed.
func (h *Headless) Live() int { return len(h.live) }
