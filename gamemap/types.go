package gamemap

import "errors"

// Sentinel errors for gamemap operations.
var (
	// ErrEmptyMap indicates a map with no rows or no columns.
	ErrEmptyMap = errors.New("gamemap: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gamemap: all rows must have the same length")
	// ErrUnknownTerrain indicates an unsupported terrain character.
	ErrUnknownTerrain = errors.New("gamemap: unknown terrain character")
	// ErrSizeMismatch indicates terrain data that does not cover width×height tiles.
	ErrSizeMismatch = errors.New("gamemap: terrain size does not match dimensions")
	// ErrManifest indicates a missing or malformed manifest.json.
	ErrManifest = errors.New("gamemap: invalid manifest")
)

// TileRef identifies a tile inside one grid as y*width + x.
type TileRef int32

// InvalidTile marks an absent tile.
const InvalidTile TileRef = -1

// Terrain bit layout.
const (
	LandBit      = 7
	ShorelineBit = 6
	OceanBit     = 5

	magnitudeMask = 0x1f
)

// Grid is the read-only tile grid contract used by the search code.
//
// Ref does not bounds-check; callers pass coordinates that lie inside the
// grid. IsWater expects a valid ref.
type Grid interface {
	Width() int
	Height() int
	X(t TileRef) int
	Y(t TileRef) int
	Ref(x, y int) TileRef
	IsValidRef(t TileRef) bool
	IsWater(t TileRef) bool
	// Neighbors appends the 4-connected neighbours of t to dst, in the order
	// up, down, left, right, and returns the extended slice.
	Neighbors(t TileRef, dst []TileRef) []TileRef
}

// TerrainSource exposes the packed terrain bytes of a grid. Bulk passes use
// it to skip per-tile interface calls.
type TerrainSource interface {
	Terrain() []byte
}
