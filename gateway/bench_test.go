package gateway_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/navsat/gamemap"
	"github.com/katalvlaran/navsat/gateway"
)

// BenchmarkBuild builds the graph of a 512×512 mini-map with blobby islands.
func BenchmarkBuild(b *testing.B) {
	const side = 512
	rng := rand.New(rand.NewSource(42))
	terrain := make([]byte, side*side)
	for i := range terrain {
		terrain[i] = 1 << gamemap.OceanBit
	}
	for k := 0; k < 400; k++ {
		cx, cy, r := rng.Intn(side), rng.Intn(side), 2+rng.Intn(10)
		for y := max(0, cy-r); y < min(side, cy+r); y++ {
			for x := max(0, cx-r); x < min(side, cx+r); x++ {
				terrain[y*side+x] = 1 << gamemap.LandBit
			}
		}
	}
	mini, err := gamemap.New(side, side, terrain)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gateway.NewBuilder(mini, gateway.DefaultSectorSize).Build(false)
	}
}
