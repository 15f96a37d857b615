// Package tsp — tour utilities shared by every solver.
//
// This file contains compact, allocation-conscious utilities that operate
// purely on tour structure (index sequences), without depending on a
// distance matrix. Provided helpers:
//   - NewIdentityTour: the canonical closed cycle [0,1,...,n-1,0].
//   - NewRandomTour: a uniformly random closed cycle via Fisher–Yates.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: build a closed tour from a permutation, rotated to a start.
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given vertex.
//   - CanonicalizeOrientationInPlace: canonical direction w.r.t. neighbors of start.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//   - SwapInPlace: exchange two positions (mutation primitive).
//   - IndexOfStart: locate start in [0..n-1] prefix.
//   - CopyTour: independent shallow copy of a tour slice.
//   - EqualToursModuloRotation: equality under rotation (fixed start, same direction).
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
//   - Deterministic behavior with clear pre/post-conditions.
package tsp

import (
	"math/rand"
	"strconv"
	"strings"
)

// NewIdentityTour returns the canonical closed cycle [0, 1, ..., n-1, 0].
//
// Complexity: O(n) time, O(n) space.
func NewIdentityTour(n int) ([]int, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	tour := make([]int, n+1)
	for i := range tour[:n] {
		tour[i] = i
	}
	return tour, nil
}

// NewRandomTour returns a uniformly random closed cycle starting and ending
// at start, built by Fisher–Yates shuffling the identity permutation.
//
// Complexity: O(n) time, O(n) space.
func NewRandomTour(n int, start int, rng *rand.Rand) ([]int, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	perm, err := permRange(n, rng)
	if err != nil {
		return nil, err
	}
	return MakeTourFromPermutation(perm, n, start)
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n: every slot in range, no repeats.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	dup := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || dup[v] {
			return ErrDimensionMismatch
		}
		dup[v] = true
	}
	return nil
}

// positionInPrefix scans the first n elements of seq for target, returning
// its index or -1. Shared by every function below that needs to anchor a
// rotation on a specific vertex.
func positionInPrefix(seq []int, n, target int) int {
	for idx := 0; idx < n; idx++ {
		if seq[idx] == target {
			return idx
		}
	}
	return -1
}

// rotateClosed builds a closed tour of length n+1 by rotating the first n
// elements of seq so anchor lands at position 0, then appending the
// closing vertex seq[anchor].
func rotateClosed(seq []int, n, anchor int) []int {
	out := make([]int, n+1)
	copy(out, seq[anchor:n])
	copy(out[n-anchor:], seq[:anchor])
	out[n] = seq[anchor]
	return out
}

// MakeTourFromPermutation builds a closed Hamiltonian tour from a vertex
// permutation:
//  1. Validate that perm is a permutation of {0..n-1}.
//  2. Locate start within perm and rotate it to position 0.
//  3. Append the closing start at position n.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	anchor := positionInPrefix(perm, n, start)
	if anchor < 0 {
		return nil, ErrDimensionMismatch
	}
	return rotateClosed(perm, n, anchor), nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}
	return ValidatePermutation(tour[:n], n)
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed tour
// (len==n+1) or a raw path (len==n, no closing vertex); in the raw-path
// case the closing start is appended.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := cycleLength(tour)
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	anchor := positionInPrefix(tour, n, start)
	if anchor < 0 {
		return nil, ErrDimensionMismatch
	}
	return rotateClosed(tour, n, anchor), nil
}

// cycleLength reports how many distinct vertices a tour slice encodes: n
// when the slice is already closed (first and last entries match), or
// len(tour) when it is a bare path with no closing vertex yet.
func cycleLength(tour []int) int {
	if tour[0] == tour[len(tour)-1] {
		return len(tour) - 1
	}
	return len(tour)
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed
// start: when the vertex right after start outranks the vertex right
// before it, the interior [1..n-1] is reversed so the same cyclic order
// always serializes the same way.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}
	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. This is the primitive used by 2-opt.
//
// Contracts: the tour is closed (len==n+1, tour[0]==tour[n]); 1 ≤ i < k ≤ n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
		tour[lo], tour[hi] = tour[hi], tour[lo]
	}
	return nil
}

// SwapInPlace exchanges the cities at positions i and k of a closed tour,
// the mutation primitive used by StochasticHill and the genetic
// algorithm's swap mutation.
//
// Contracts: 1 ≤ i, k ≤ n-1 (the closing position n and the start-mirroring
// position 0 are never touched directly).
//
// Complexity: O(1).
func SwapInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 {
		return ErrDimensionMismatch
	}
	if i < 1 || i > n-1 || k < 1 || k > n-1 {
		return ErrDimensionMismatch
	}
	tour[i], tour[k] = tour[k], tour[i]
	return nil
}

// IndexOfStart returns the index of the first occurrence of start within the
// prefix [0..n-1] (ignores the closing vertex at n). Returns -1 if not found.
//
// Complexity: O(n) time.
func IndexOfStart(tour []int, start int) int {
	if len(tour) == 0 {
		return -1
	}
	return positionInPrefix(tour, cycleLength(tour), start)
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// EqualToursModuloRotation checks equality of two closed tours under rotation
// (fixed start value, same direction). Assumes both inputs are closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	start := a[0]
	if a[n] != start || b[n] != b[0] {
		return false
	}
	offset := positionInPrefix(b, n, start)
	if offset < 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(offset+i)%n] {
			return false
		}
	}
	return true
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	n := len(tour) - 1
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range tour[:n] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(tour[n]))
	b.WriteByte(']')
	return b.String()
}
