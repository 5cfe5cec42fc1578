// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
)

// Common location IDs used across core tests.
const (
	LocEmpty = ""

	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"

	LocX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0  = 0
	Weight3  = 3
	Weight5  = 5
	Weight7  = 7
	Weight10 = 10
)

// buildTriangle returns the graph A–B(5), B–C(3), A–C(10).
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(LocA, LocB, Weight5))
	require.NoError(t, g.AddEdge(LocB, LocC, Weight3))
	require.NoError(t, g.AddEdge(LocA, LocC, Weight10))

	return g
}
