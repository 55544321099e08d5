package pathfinder

// Water returns the water PathFinder for src: the NavMesh backend when src
// has an initialized NavMesh, the legacy backend otherwise.
func Water(src Source) PathFinder {
	if a, err := NewNavMeshAdapter(src); err == nil {
		return a
	}

	return WaterLegacy(src, Options{})
}

// WaterLegacy returns the legacy mini-map A* backend.
func WaterLegacy(src Source, opts Options) PathFinder {
	return NewMiniAStarAdapter(src, opts)
}
