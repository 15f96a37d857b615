package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := City{X: 0, Y: 0}
	b := City{X: 3, Y: 4}
	require.InDelta(t, 5.0, Distance(a, b), 1e-12)
}

func TestBuildDistanceMatrix_TooFewCities(t *testing.T) {
	_, err := BuildDistanceMatrix([]City{{X: 0, Y: 0}})
	require.ErrorIs(t, err, ErrTooFewCities)
}

func TestBuildDistanceMatrix_NonFinite(t *testing.T) {
	cities := []City{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}}
	_, err := BuildDistanceMatrix(cities)
	require.ErrorIs(t, err, ErrNonFiniteCoordinate)
}

func TestBuildDistanceMatrix_SymmetricAndZeroDiagonal(t *testing.T) {
	cities := []City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	d, err := BuildDistanceMatrix(cities)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())

	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, d.At(i, i))
		for j := 0; j < 3; j++ {
			require.InDelta(t, d.At(i, j), d.At(j, i), 1e-12)
		}
	}
	require.InDelta(t, 1.0, d.At(0, 1), 1e-12)
	require.InDelta(t, 1.0, d.At(0, 2), 1e-12)
	want := 1.4142135623730951
	require.InDelta(t, want, d.At(1, 2), 1e-9)
}

func TestDenseCloneIndependence(t *testing.T) {
	d := NewDense(2)
	d.Set(0, 1, 7)
	c := d.Clone()
	c.Set(0, 1, 9)
	require.Equal(t, 7.0, d.At(0, 1))
	require.Equal(t, 9.0, c.At(0, 1))
}
