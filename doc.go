// Package navsat is a hierarchical water pathfinder for very large tile maps:
// naval units ask for a route many times per simulated tick, and every query
// must stay allocation-light and bounded.
//
// 🚀 What is inside?
//
//	• Water components: scan-line flood fill labelling every connected body of water
//	• FastBFS / FastAStar: stamp-based searches that never clear their scratch arrays
//	• Gateway graph: sectors of the half-resolution mini-map linked at border openings
//	• NavMesh: gateway A*, local stitching and line-of-sight smoothing
//	• PathFinder: one stepping contract over the NavMesh and the legacy mini-map A*
//
// Packages:
//
//	gamemap/      tiles, terrain bits, mini-map downscale, path upscale, map files
//	water/        water component ids (uint8 → uint16 → uint32 widening store)
//	bfs/          grid BFS with an Expand/Reject/Stop visitor
//	astar/        A* over int node ids, batch and incremental
//	gateway/      Sector, Gateway, Edge, Graph and its Builder
//	navmesh/      NavMesh, the gateway and bounded A* adapters, smoothing
//	pathfinder/   Status/Result, NavMeshAdapter, MiniAStarAdapter, Water
//	world/        a loaded map with its mini-map and NavMesh
//	config/       TOML configuration and zap logger construction
//	scenario/     YAML benchmark scenarios, runner and generator
//	playground/   HTTP and websocket query server
//	viewer/       tcell terminal view of a map and a path
//
// Quick example:
//
//	w, _ := world.FromRows([]string{
//		"WWWWWWWW",
//		"WWLLLLWW",
//		"WWWWWWWW",
//	})
//	pf := pathfinder.Water(w)
//	path := pf.FindPath(w.Ref(0, 1), w.Ref(7, 1))
//
// Binaries live under cmd/: navbench, navplayground and navview.
//
// None of the search types are safe for concurrent use; give each goroutine
// its own World, or serialize queries per World as the playground does.
package navsat
