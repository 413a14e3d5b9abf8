package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/astar"
	"github.com/katalvlaran/hexmaze/builder"
	"github.com/katalvlaran/hexmaze/hexgrid"
)

func benchFindPath(b *testing.B, radius int) {
	m, err := builder.New().WithRadius(radius).WithSeed(12345).Build()
	require.NoError(b, err)
	from := hexgrid.At(-radius, 0)
	to := hexgrid.At(radius, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path, err := astar.FindPath(m, from, to)
		if err != nil || path == nil {
			b.Fatalf("path=%v err=%v", path, err)
		}
	}
}

func BenchmarkFindPath_Radius5(b *testing.B)  { benchFindPath(b, 5) }
func BenchmarkFindPath_Radius10(b *testing.B) { benchFindPath(b, 10) }
func BenchmarkFindPath_Radius25(b *testing.B) { benchFindPath(b, 25) }
