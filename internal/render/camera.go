package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int // screen column of world x=0
	OffsetY    int // screen row of world y=0
	ViewWidth  int // in world cells
	ViewHeight int // in world cells
}

// NewCamera creates a camera whose world origin sits at screen (ox, oy).
func NewCamera(ox, oy, viewW, viewH int) *Camera {
	return &Camera{OffsetX: ox, OffsetY: oy, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy). Positions are
// truncated to the cell that contains them.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	cx, cy := int(wx), int(wy)
	visible = wx >= 0 && wy >= 0 && cx < c.ViewWidth && cy < c.ViewHeight
	sx = c.OffsetX + cx*2
	sy = c.OffsetY + cy
	return
}

// ScreenToWorld converts screen (sx, sy) to the world cell under it.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return (sx - c.OffsetX) / 2, sy - c.OffsetY
}

// Columns is the on-screen width of the viewport.
func (c *Camera) Columns() int { return c.ViewWidth * 2 }
