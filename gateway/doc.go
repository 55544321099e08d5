// Package gateway decomposes a mini-map into square sectors and builds the
// gateway graph used for hierarchical water pathfinding.
//
// What
//
//   - Sector: an S×S square of the mini-map (S = DefaultSectorSize = 32),
//     addressed by (sx, sy). A map has ceil(W/S) × ceil(H/S) sector slots;
//     sectors materialise as gateways are found on their borders.
//   - Gateway: the midpoint tile of a maximal run of water crossings over a
//     sector's right or bottom border. It is registered in both sectors that
//     share the border.
//   - Edge: a directed half of a water connection between two gateways of
//     the same sector, with Cost = BFS distance in mini tiles and an optional
//     cached full-resolution Path.
//   - Graph: the immutable result of Builder.Build.
//
// Build
//
//  1. Label water components of the mini-map (package water).
//  2. Scan every sector's right and bottom border in raster order and create
//     or reuse one gateway per crossing run.
//  3. For each sector and each gateway i, run one bounded BFS that looks for
//     all later gateways j > i of the same water component at once. Tiles
//     outside the sector box are rejected unless they are the seed or a
//     target. The BFS stops as soon as every target was seen.
//  4. A pair reached from two sectors keeps the cheaper edge; both directed
//     halves are replaced together.
//
// Building never fails: a map without water simply yields a graph without
// gateways, and every later query against it comes back empty.
//
// Mutability
//
//	Topology is read-only after Build. Only Edge.Path is written later, by
//	path queries that cache stitched segments; such writes need exclusive
//	access to the Graph.
package gateway
