package render

import (
	"emoji-city/assets"
	"emoji-city/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mattn/go-runewidth"
)

// sprite is the visual representation behind one handle.
type sprite struct {
	kind entity.Kind
	pos  mgl64.Vec2
}

// Renderer draws the city area onto a tcell screen. It implements
// entity.Renderer: active entities own one sprite each.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	next    entity.Handle
	sprites map[entity.Handle]sprite
	order   []entity.Handle // creation order; later sprites are drawn on top
}

// NewRenderer creates a Renderer for an areaW x areaH city drawn below the
// title row, inside a one-cell frame.
func NewRenderer(screen tcell.Screen, areaW, areaH int) *Renderer {
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(1, 2, areaW, areaH),
		sprites: make(map[entity.Handle]sprite),
	}
}

// Create registers a sprite for an activated entity.
func (r *Renderer) Create(kind entity.Kind, _ string, pos mgl64.Vec2) entity.Handle {
	r.next++
	r.sprites[r.next] = sprite{kind: kind, pos: pos}
	r.order = append(r.order, r.next)
	return r.next
}

// Destroy drops the sprite behind h. Unknown handles are ignored.
func (r *Renderer) Destroy(h entity.Handle) {
	if _, ok := r.sprites[h]; !ok {
		return
	}
	delete(r.sprites, h)
	for i, o := range r.order {
		if o == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Live returns the number of sprites currently on the map.
func (r *Renderer) Live() int { return len(r.sprites) }

// Camera exposes the world/screen mapping of the city area.
func (r *Renderer) Camera() *Camera { return r.camera }

// Bottom is the screen row just below the city frame.
func (r *Renderer) Bottom() int { return r.camera.OffsetY + r.camera.ViewHeight + 1 }

// DrawFrame clears the screen and renders the title, the city frame, the
// ground and every sprite.
func (r *Renderer) DrawFrame() {
	r.screen.Clear()
	r.drawText(1, 0, "🏙  "+assets.CityName, titleStyle)
	r.drawBorder()
	r.drawGround()
	for _, h := range r.order {
		s := r.sprites[h]
		sx, sy, onScreen := r.camera.WorldToScreen(s.pos.X(), s.pos.Y())
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, s.kind.Glyph(), tcell.StyleDefault.Background(tcell.ColorBlack))
	}
}

func (r *Renderer) drawBorder() {
	c := r.camera
	left, right := c.OffsetX-1, c.OffsetX+c.Columns()
	top, bottom := c.OffsetY-1, c.OffsetY+c.ViewHeight
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, frameStyle)
		r.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, frameStyle)
	r.screen.SetContent(right, top, '┐', nil, frameStyle)
	r.screen.SetContent(left, bottom, '└', nil, frameStyle)
	r.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (r *Renderer) drawGround() {
	for y := 0; y < r.camera.ViewHeight; y++ {
		for x := 0; x < r.camera.ViewWidth; x++ {
			sx, sy, _ := r.camera.WorldToScreen(float64(x), float64(y))
			r.putGlyph(sx, sy, assets.GlyphGround, groundStyle)
			r.screen.SetContent(sx+1, sy, ' ', nil, groundStyle)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	putGlyph(r.screen, x, y, glyph, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	drawText(r.screen, x, y, text, style)
}

func putGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at (x, y), advancing by each rune's display
// width. It returns the column after the last rune.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	sw, _ := screen.Size()
	col := x
	for _, ch := range text {
		if col >= sw {
			break
		}
		screen.SetContent(col, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		col += w
	}
	return col
}
