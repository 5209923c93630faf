package render

import (
	"strings"
	"testing"

	"emoji-city/internal/entity"
	"emoji-city/internal/registry"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(80, 24)
	return ss
}

// rowText returns the primary runes of row y.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(1, 2, 30, 12)
	sx, sy, ok := c.WorldToScreen(3.7, 2.2)
	if !ok || sx != 7 || sy != 4 {
		t.Errorf("WorldToScreen(3.7, 2.2) = (%d, %d, %v); want (7, 4, true)", sx, sy, ok)
	}
	for _, p := range [][2]float64{{-0.5, 0}, {0, -1}, {30, 0}, {0, 12}} {
		if _, _, ok := c.WorldToScreen(p[0], p[1]); ok {
			t.Errorf("WorldToScreen(%v) visible; want hidden", p)
		}
	}
	if wx, wy := c.ScreenToWorld(7, 4); wx != 3 || wy != 2 {
		t.Errorf("ScreenToWorld(7, 4) = (%d, %d); want (3, 2)", wx, wy)
	}
	if c.Columns() != 60 {
		t.Errorf("Columns = %d; want 60", c.Columns())
	}
}

func TestRendererHandles(t *testing.T) {
	r := NewRenderer(newSimScreen(t), 30, 12)
	a := r.Create(entity.Building, "BUILDING", mgl64.Vec2{1, 1})
	b := r.Create(entity.Vehicle, "VEHICLE", mgl64.Vec2{2, 2})
	if a == entity.NilHandle || b == entity.NilHandle || a == b {
		t.Fatalf("handles %d, %d must be distinct and non-nil", a, b)
	}
	if r.Live() != 2 {
		t.Fatalf("Live = %d; want 2", r.Live())
	}
	r.Destroy(a)
	r.Destroy(a)
	r.Destroy(entity.Handle(999))
	if r.Live() != 1 {
		t.Errorf("Live = %d; want 1", r.Live())
	}
	if len(r.order) != 1 || r.order[0] != b {
		t.Errorf("draw order = %v; want [%d]", r.order, b)
	}
}

func TestDrawFrame(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 30, 12)
	h := r.Create(entity.Vehicle, "VEHICLE", mgl64.Vec2{3.7, 2.2})
	r.DrawFrame()

	if got, _, _, _ := ss.GetContent(7, 4); got != []rune(entity.Vehicle.Glyph())[0] {
		t.Errorf("cell (7,4) = %q; want the vehicle glyph", got)
	}
	if got, _, _, _ := ss.GetContent(0, 1); got != '┌' {
		t.Errorf("top-left corner = %q", got)
	}
	if got, _, _, _ := ss.GetContent(61, 14); got != '┘' {
		t.Errorf("bottom-right corner = %q", got)
	}
	if r.Bottom() != 15 {
		t.Errorf("Bottom = %d; want 15", r.Bottom())
	}

	r.Destroy(h)
	r.DrawFrame()
	if got, _, _, _ := ss.GetContent(7, 4); got == []rune(entity.Vehicle.Glyph())[0] {
		t.Error("destroyed sprite still drawn")
	}
}

func TestHUDDraw(t *testing.T) {
	ss := newSimScreen(t)
	hud := NewHUD(ss, 15, []string{"A", "B"})
	hud.OnStateChanged(registry.State{Resources: 650, Buildings: 1, Vehicles: 1})
	hud.OnPoolsChanged(map[entity.Kind]registry.PoolState{
		entity.Building: {Free: 4, Active: 1},
		entity.Vehicle:  {Free: 0, Active: 5},
		entity.Citizen:  {Free: 5},
	})
	hud.Draw([]string{"one", "two", "three", "four"})

	if !strings.Contains(rowText(ss, 15), "650") {
		t.Errorf("stats row %q missing resources", rowText(ss, 15))
	}
	building := rowText(ss, 16)
	if !strings.Contains(building, "BUILDING") || !strings.Contains(building, "4 free / 1 active") {
		t.Errorf("building row = %q", building)
	}
	if n := strings.Count(building, string([]rune(entity.Building.Glyph())[0])); n != 4 {
		t.Errorf("building row shows %d glyphs; want 4", n)
	}
	if !strings.Contains(rowText(ss, 17), "(empty)") {
		t.Errorf("vehicle row = %q; want empty marker", rowText(ss, 17))
	}
	if strings.Contains(rowText(ss, 20), "one") || !strings.Contains(rowText(ss, 20), "two") {
		t.Errorf("first message row = %q; want the last three messages", rowText(ss, 20))
	}
	if !strings.Contains(rowText(ss, 22), "four") {
		t.Errorf("last message row = %q", rowText(ss, 22))
	}
	if hud.Rows() != 8 {
		t.Errorf("Rows = %d; want 8", hud.Rows())
	}
}

func TestHUDButtonAt(t *testing.T) {
	hud := NewHUD(newSimScreen(t), 15, []string{"A", "B"})
	row := 19
	cases := []struct {
		x, y int
		want int
		ok   bool
	}{
		{1, row, 0, true},
		{3, row, 0, true},
		{4, row, 0, false},
		{5, row, 1, true},
		{7, row, 1, true},
		{8, row, 0, false},
		{1, row - 1, 0, false},
	}
	for _, c := range cases {
		got, ok := hud.ButtonAt(c.x, c.y)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ButtonAt(%d, %d) = (%d, %v); want (%d, %v)", c.x, c.y, got, ok, c.want, c.ok)
		}
	}
}
