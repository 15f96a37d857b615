package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIdentityTour(t *testing.T) {
	tour, err := NewIdentityTour(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}

func TestNewIdentityTour_TooFew(t *testing.T) {
	_, err := NewIdentityTour(1)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMakeTourFromPermutation_RotatesToStart(t *testing.T) {
	tour, err := MakeTourFromPermutation([]int{2, 0, 1}, 3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, tour[0])
	require.Equal(t, 1, tour[len(tour)-1])
	require.NoError(t, ValidateTour(tour, 3, 1))
}

func TestValidateTour_RejectsDuplicate(t *testing.T) {
	err := ValidateTour([]int{0, 1, 1, 0}, 3, 0)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestReverseArcInPlace(t *testing.T) {
	tour := []int{0, 1, 2, 3, 4, 0}
	require.NoError(t, reverseArcInPlace(tour, 1, 3))
	require.Equal(t, []int{0, 3, 2, 1, 4, 0}, tour)
}

func TestEqualToursModuloRotation(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{2, 3, 0, 1, 2}
	require.True(t, EqualToursModuloRotation(a, b))
}

func TestSwapInPlace_RejectsBoundary(t *testing.T) {
	tour := []int{0, 1, 2, 3, 0}
	require.ErrorIs(t, SwapInPlace(tour, 0, 2), ErrDimensionMismatch)
}
