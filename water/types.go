package water

// Land markers of the three id widths.
const (
	landMarker8  = 0xFF
	landMarker16 = 0xFFFF
	landMarker32 = 0xFFFFFFFF

	// Highest component id each width stores before widening.
	maxID8  = 253
	maxID16 = 65533
	maxID32 = landMarker32 - 1
)

// Option configures a Components labeling.
type Option func(*Components)

// WithTerrainAccess toggles reading land bits straight from the terrain bytes
// when the grid exposes them (default true). Disabled, IsWater is used.
func WithTerrainAccess(enabled bool) Option {
	return func(c *Components) {
		c.terrainAccess = enabled
	}
}

// idWord is the set of id storage widths.
type idWord interface {
	~uint8 | ~uint16 | ~uint32
}
