package kdtree

import (
	"math/rand"
	"testing"

	"github.com/mgrzywacz/eutsp/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	_, err := Build(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestNearestUnvisited_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cities := make([]geom.City, 50)
	for i := range cities {
		cities[i] = geom.City{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	tree, err := Build(cities)
	require.NoError(t, err)

	visited := make([]bool, len(cities))
	for step := 0; step < len(cities); step++ {
		q := cities[rng.Intn(len(cities))]

		got, ok := tree.NearestUnvisited(q)
		wantOK := false
		wantDist := 0.0
		for i, c := range cities {
			if visited[i] {
				continue
			}
			d := geom.Distance(c, q)
			if !wantOK || d < wantDist {
				_, wantDist, wantOK = i, d, true
			}
		}
		require.Equal(t, wantOK, ok)
		if ok {
			require.InDelta(t, wantDist, geom.Distance(cities[got], q), 1e-9)
		}

		// Mark an arbitrary unvisited city as consumed for the next round.
		for i := range visited {
			if !visited[i] {
				visited[i] = true
				tree.MarkVisited(i)
				break
			}
		}
	}
}

func TestKNearestUnvisited_OrderedAscending(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 0}}
	tree, err := Build(cities)
	require.NoError(t, err)

	got := tree.KNearestUnvisited(geom.City{X: 0, Y: 0}, 2)
	require.Len(t, got, 2)
	require.Equal(t, 0, got[0])
	require.Equal(t, 1, got[1])
}
