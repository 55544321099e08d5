// Package pathfinder is the unit-facing contract for water movement.
//
// A PathFinder is asked every tick for the next tile of a unit:
//
//	r := pf.Next(unitTile, target, 0)
//	switch r.Status {
//	case pathfinder.Next:     // move to r.Node
//	case pathfinder.Pending:  // search still running, ask again next tick
//	case pathfinder.Complete: // arrived; r.Node is the final tile
//	case pathfinder.NotFound: // unreachable
//	}
//
// Two backends implement it:
//
//   - NavMeshAdapter plans whole paths with navmesh.NavMesh and replays them.
//   - MiniAStarAdapter, the legacy backend, runs a budgeted incremental A*
//     over the whole mini-map and may answer Pending for a few ticks.
//
// Both recompute when the destination changes or the unit leaves the
// planned path. Water picks the NavMesh backend when it is available.
//
// Adapters keep per-unit state and are not safe for concurrent use.
package pathfinder
