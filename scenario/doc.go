// Package scenario holds the benchmark scenarios of the water pathfinder:
// a map name, named ports and the routes between them.
//
// A scenario file is YAML:
//
//	map: lagoon
//	ports:
//	  Port001: [12, 40]
//	  Port002: [95, 7]
//	routes:
//	  - [Port001, Port002]
//
// Resolve turns port names into tiles of a world, Run measures every route
// with a PathFinder and Summarize folds the results. Generate builds a
// synthetic scenario from shoreline tiles.
package scenario
