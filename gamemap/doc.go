// Package gamemap models the tile grids the water pathfinder runs on.
//
// What
//
//   - TileRef: a row-major tile index (y*Width + x) inside one grid.
//   - Grid: the read-only contract search code depends on (dimensions,
//     coordinate conversion, water test, 4-neighbourhood).
//   - Map: a packed terrain grid, one byte per tile.
//   - Downscale: builds the half-resolution mini-map (ceil(w/2) × ceil(h/2)),
//     where a mini tile is water if ANY tile of its 2×2 block is water.
//   - UpscalePath: turns a mini-map path back into a contiguous
//     full-resolution path with exact endpoints.
//   - LoadDir / WriteDir: the on-disk layout (manifest.json, map.bin,
//     map4x.bin, map16x.bin).
//
// Terrain byte
//
//	bit 7    land
//	bit 6    shoreline
//	bit 5    ocean
//	bits 0-4 magnitude (elevation for land, depth for water)
//
// A tile is water iff the land bit is clear.
//
// TileRef spaces
//
//	The full map and its mini-map use disjoint TileRef spaces. Never pass a
//	mini-map ref to the full map or the other way round; convert through
//	coordinates (×2 / ÷2).
//
// Complexity
//
//   - All per-tile accessors are O(1).
//   - Downscale is O(W×H).
//   - UpscalePath is O(L) in the length of the produced path.
//
// Errors
//
//   - ErrEmptyMap        if width or height is zero.
//   - ErrNonRectangular  if rows passed to FromRows differ in length.
//   - ErrUnknownTerrain  if a row contains a character other than 'W' or 'L'.
//   - ErrSizeMismatch    if terrain length disagrees with width×height.
//   - ErrManifest        if manifest.json is missing or malformed.
package gamemap
