package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/world"
)

// Route generation shape: each port is linked to the next routesPerPort
// ports, then up to extraRoutes more links reach a few ports further.
const (
	routesPerPort = 5
	extraRoutes   = 200
	maxRoutes     = 1000
)

// Generate picks up to numPorts random shoreline water tiles of w, seeded by
// seed, and links them into routes. Tiles flagged ocean and shoreline in the
// terrain are preferred; maps without those flags use water tiles next to
// land.
func Generate(w *world.World, numPorts int, seed int64) (*Scenario, error) {
	m := w.Full()
	candidates := shoreline(m)
	if len(candidates) < 2 {
		return nil, fmt.Errorf("%w: %d on %s", ErrTooFewPorts, len(candidates), w.Name())
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := min(numPorts, len(candidates))

	s := &Scenario{Map: w.Name(), Ports: make(map[string][2]int, n)}
	for i := 0; i < n; i++ {
		t := candidates[i]
		s.Ports[portName(i)] = [2]int{m.X(t), m.Y(t)}
	}

	for i := 0; i < n; i++ {
		for j := 1; j <= routesPerPort && i+j < n; j++ {
			s.Routes = append(s.Routes, [2]string{portName(i), portName(i + j)})
		}
	}
	target := min(maxRoutes, len(s.Routes)+extraRoutes)
	for i := 0; i < n && len(s.Routes) < target; i++ {
		for j := routesPerPort + 1; j <= routesPerPort+3 && i+j < n && len(s.Routes) < target; j++ {
			s.Routes = append(s.Routes, [2]string{portName(i), portName(i + j)})
		}
	}

	return s, nil
}

func portName(i int) string { return fmt.Sprintf("Port%03d", i+1) }

func shoreline(m *gamemap.Map) []gamemap.TileRef {
	var flagged, coastal []gamemap.TileRef
	var nbuf []gamemap.TileRef
	for t := gamemap.TileRef(0); int(t) < m.NumTiles(); t++ {
		if !m.IsWater(t) {
			continue
		}
		if m.IsOcean(t) && m.IsShoreline(t) {
			flagged = append(flagged, t)
			continue
		}
		nbuf = m.Neighbors(t, nbuf[:0])
		for _, nb := range nbuf {
			if m.IsLand(nb) {
				coastal = append(coastal, t)
				break
			}
		}
	}
	if len(flagged) > 0 {
		return flagged
	}

	return coastal
}
