package assets

// Emoji constants used as city glyphs.
const (
	GlyphBuilding = "🏢"
	GlyphVehicle  = "🚗"
	GlyphCitizen  = "🧑"
	GlyphGround   = "·"
)

// KindDef describes one kind of pooled city entity.
type KindDef struct {
	ID    string // stable identifier used in snapshots and config ("building")
	Name  string // human readable name for messages
	Label string // fixed display label bound to the kind
	Glyph string
	Price int // default resource cost; refunds are a fraction of this
}

// Kinds lists every entity kind in display order.
var Kinds = []KindDef{
	{
		ID:    "building",
		Name:  "Building",
		Label: "BUILDING",
		Glyph: GlyphBuilding,
		Price: 200,
	},
	{
		ID:    "vehicle",
		Name:  "Vehicle",
		Label: "VEHICLE",
		Glyph: GlyphVehicle,
		Price: 100,
	},
	{
		ID:    "citizen",
		Name:  "Citizen",
		Label: "CITIZEN",
		Glyph: GlyphCitizen,
		Price: 50,
	},
}

// CityName is shown in the HUD title.
const CityName = "Emberveil Commons"
