package navmesh_test

import (
	"fmt"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/navmesh"
)

func ExampleNavMesh_FindPath() {
	full, _ := gamemap.FromRows([]string{
		"WWWWWW",
		"WWLLWW",
		"WWLLWW",
	})
	n := navmesh.New(full, gamemap.Downscale(full))
	n.Initialize()

	for _, t := range n.FindPath(full.Ref(0, 0), full.Ref(5, 0)) {
		fmt.Printf("(%d,%d) ", full.X(t), full.Y(t))
	}
	fmt.Println()
	// Output:
	// (0,0) (1,0) (2,0) (3,0) (4,0) (5,0)
}
