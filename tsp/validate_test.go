package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePlateauEpochs(t *testing.T) {
	v, err := resolvePlateauEpochs(Options{}, 200)
	require.NoError(t, err)
	require.Equal(t, 200, v)

	v, err = resolvePlateauEpochs(Options{PlateauEpochs: Ptr(0)}, 200)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = resolvePlateauEpochs(Options{PlateauEpochs: Ptr(-1)}, 200)
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestResolveCoolingRate(t *testing.T) {
	v, err := resolveCoolingRate(Options{}, 0.0005)
	require.NoError(t, err)
	require.Equal(t, 0.0005, v)

	v, err = resolveCoolingRate(Options{CoolingRate: Ptr(0.0)}, 0.0005)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = resolveCoolingRate(Options{CoolingRate: Ptr(1.0)}, 0.0005)
	require.ErrorIs(t, err, ErrInvalidOption)

	_, err = resolveCoolingRate(Options{CoolingRate: Ptr(-0.1)}, 0.0005)
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestResolveMutationProbability(t *testing.T) {
	v, err := resolveMutationProbability(Options{MutationProbability: Ptr(0.0)}, 0.001)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	v, err = resolveMutationProbability(Options{MutationProbability: Ptr(1.0)}, 0.001)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = resolveMutationProbability(Options{MutationProbability: Ptr(1.5)}, 0.001)
	require.ErrorIs(t, err, ErrInvalidOption)

	_, err = resolveMutationProbability(Options{MutationProbability: Ptr(-0.5)}, 0.001)
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestResolveNElite(t *testing.T) {
	v, err := resolveNElite(Options{NElite: Ptr(0)}, 50, 3)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = resolveNElite(Options{NElite: Ptr(51)}, 50, 3)
	require.ErrorIs(t, err, ErrInvalidOption)

	_, err = resolveNElite(Options{NElite: Ptr(-1)}, 50, 3)
	require.ErrorIs(t, err, ErrInvalidOption)

	v, err = resolveNElite(Options{}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, v, "unset falls back to the default clamped to popSize")
}

func TestResolvePopSize(t *testing.T) {
	v, err := resolvePopSize(Options{}, 50)
	require.NoError(t, err)
	require.Equal(t, 50, v)

	_, err = resolvePopSize(Options{PopSize: 1}, 50)
	require.ErrorIs(t, err, ErrInvalidOption, "1 is in-domain-excluded, not unset")

	v, err = resolvePopSize(Options{PopSize: 10}, 50)
	require.NoError(t, err)
	require.Equal(t, 10, v)
}

func TestResolveTabuCapacity(t *testing.T) {
	v, err := resolveTabuCapacity(Options{}, 25)
	require.NoError(t, err)
	require.Equal(t, 25, v)

	_, err = resolveTabuCapacity(Options{TabuCapacity: -1}, 25)
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestResolveTournamentK(t *testing.T) {
	v, err := resolveTournamentK(Options{}, 50, 3)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = resolveTournamentK(Options{TournamentK: -2}, 50, 3)
	require.ErrorIs(t, err, ErrInvalidOption)

	v, err = resolveTournamentK(Options{TournamentK: 200}, 50, 3)
	require.NoError(t, err)
	require.Equal(t, 50, v, "clamped to popSize")
}
