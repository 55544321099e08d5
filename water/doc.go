// Package water labels the 4-connected water regions of a tile grid.
//
// What
//
//   - Components.Initialize runs one full-grid pass. Every water tile gets the
//     id of its connected component (1, 2, 3, … in row-major discovery order).
//   - Components.ComponentID answers in O(1) afterwards; 0 means land, an
//     out-of-range tile, or an uninitialized labeling.
//
// Why
//
//	Two tiles in different components can never be joined by a water path, so
//	the gateway graph builder and the path queries use component ids to reject
//	pairs without searching.
//
// Algorithm
//
//  1. Pre-mark land tiles with the land marker. When the grid implements
//     gamemap.TerrainSource the marker is derived straight from terrain bit 7,
//     otherwise from IsWater.
//  2. Scan tiles in row-major order. Each still-unmarked tile is water and
//     seeds a scan-line fill: grow the full horizontal span, label it, and
//     queue unmarked tiles directly above and below the span.
//
// Storage
//
//	Ids start in a []uint8. The store widens to []uint16 when id 254 is about
//	to be assigned and to []uint32 at 65534. Written ids are copied and the
//	land marker is remapped to the new word's maximum on every widening.
//
// Complexity (N = W×H)
//
//   - Time:   O(N); every tile is labeled once and queued at most twice.
//   - Memory: O(N) for the id store and the span queue.
package water
