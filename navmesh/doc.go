// Package navmesh answers water path queries on a full-resolution map using
// the gateway graph of its half-resolution mini-map.
//
// Query pipeline (NavMesh.FindPath)
//
//  1. Early exit: endpoints closer than one sector (Manhattan) are solved by
//     a local A* over the 3×3 sectors around the start.
//  2. Each endpoint is attached to the nearest gateway of its own sector,
//     found by a sector-bounded BFS on the mini-map.
//  3. Shared nearest gateway: a 3×3-sector local A* around it is the answer.
//  4. A* over the gateway graph.
//  5. Stitching: start segment, one segment per gateway edge (cached on the
//     edge when caching is on), end segment. Every segment is a local A* on
//     the mini-map, upscaled to full resolution.
//  6. Smoothing: greedy line-of-sight shortcuts traced with a 4-connected
//     Bresenham walk over water tiles.
//
// Every failure yields nil; queries never return errors.
//
// Known limitation
//
//	Local searches run on the mini-map, where a tile is water if any of its
//	2×2 block is. Upscaled paths can therefore cross full-resolution land
//	next to narrow straits.
//
// Concurrency
//
//	A NavMesh owns its search scratch buffers and writes cached segments into
//	the shared gateway edges. It is not safe for concurrent use; serialize
//	queries per NavMesh.
package navmesh
