package render

import (
	"fmt"
	"strings"

	"emoji-city/internal/entity"
	"emoji-city/internal/registry"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MessageLines is how many log messages the HUD shows.
const MessageLines = 3

type button struct {
	label  string
	x0, x1 int // screen columns [x0, x1)
}

// HUD renders the status line, pool rows, button bar and message log below
// the city area. It implements registry.View and redraws from the last state
// it was pushed.
type HUD struct {
	screen  tcell.Screen
	top     int
	state   registry.State
	pools   map[entity.Kind]registry.PoolState
	buttons []button
}

// NewHUD creates a HUD whose first row is top. labels are the button
// captions, laid out left to right in order.
func NewHUD(screen tcell.Screen, top int, labels []string) *HUD {
	h := &HUD{
		screen: screen,
		top:    top,
		pools:  make(map[entity.Kind]registry.PoolState),
	}
	x := 1
	for _, l := range labels {
		text := " " + l + " "
		w := runewidth.StringWidth(text)
		h.buttons = append(h.buttons, button{label: text, x0: x, x1: x + w})
		x += w + 1
	}
	return h
}

func (h *HUD) OnStateChanged(s registry.State) { h.state = s }

func (h *HUD) OnPoolsChanged(p map[entity.Kind]registry.PoolState) {
	for k, s := range p {
		h.pools[k] = s
	}
}

// State returns the last registry state pushed to the HUD.
func (h *HUD) State() registry.State { return h.state }

// PoolState returns the last pool state pushed for kind k.
func (h *HUD) PoolState(k entity.Kind) registry.PoolState { return h.pools[k] }

func (h *HUD) statsRow() int     { return h.top }
func (h *HUD) poolRow(i int) int { return h.top + 1 + i }
func (h *HUD) buttonRow() int    { return h.top + 1 + len(entity.Kinds()) }
func (h *HUD) messageRow() int   { return h.buttonRow() + 1 }

// Rows is the number of screen rows the HUD occupies.
func (h *HUD) Rows() int { return h.messageRow() + MessageLines - h.top }

// Draw renders the HUD with the last MessageLines entries of messages and
// flushes the screen.
func (h *HUD) Draw(messages []string) {
	h.drawStats()
	for i, k := range entity.Kinds() {
		h.drawPool(h.poolRow(i), k)
	}
	for _, b := range h.buttons {
		drawText(h.screen, b.x0, h.buttonRow(), b.label, buttonStyle)
	}
	start := max(len(messages)-MessageLines, 0)
	for i, msg := range messages[start:] {
		drawText(h.screen, 1, h.messageRow()+i, msg, msgStyle)
	}
	h.screen.Show()
}

func (h *HUD) drawStats() {
	y := h.statsRow()
	x := drawText(h.screen, 1, y, fmt.Sprintf("💰 %d", h.state.Resources), moneyStyle)
	counts := [...]int{
		entity.Building: h.state.Buildings,
		entity.Vehicle:  h.state.Vehicles,
		entity.Citizen:  h.state.Citizens,
	}
	for _, k := range entity.Kinds() {
		x = drawText(h.screen, x+2, y, fmt.Sprintf("%s %d", k.Glyph(), counts[k]), textStyle)
	}
}

// drawPool renders "LABEL  free/active  🏢🏢🏢" with one glyph per free entity.
func (h *HUD) drawPool(y int, k entity.Kind) {
	ps := h.pools[k]
	style := tcell.StyleDefault.Foreground(KindColor(k))
	x := drawText(h.screen, 1, y, fmt.Sprintf("%-8s", k.Label()), style)
	x = drawText(h.screen, x+1, y, fmt.Sprintf("%d free / %d active", ps.Free, ps.Active), dimStyle)
	x += 2
	if ps.Free == 0 {
		drawText(h.screen, x, y, "(empty)", dimStyle)
		return
	}
	drawText(h.screen, x, y, strings.Repeat(k.Glyph(), ps.Free), textStyle)
}

// ButtonAt returns the index of the button under screen position (x, y).
func (h *HUD) ButtonAt(x, y int) (int, bool) {
	if y != h.buttonRow() {
		return 0, false
	}
	for i, b := range h.buttons {
		if x >= b.x0 && x < b.x1 {
			return i, true
		}
	}
	return 0, false
}
