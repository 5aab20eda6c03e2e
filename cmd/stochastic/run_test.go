package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMatrix covers the ';'/',' row-major notation.
func TestParseMatrix(t *testing.T) {
	t.Parallel()

	m, err := parseMatrix("0,1; 1,0")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, m)

	_, err = parseMatrix("")
	assert.Error(t, err)

	_, err = parseMatrix("0,x;1,0")
	assert.Error(t, err)
}

// TestLoadScenario verifies YAML decoding including the optional seed.
func TestLoadScenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
process: markov
steps: 3
seed: 42
markov:
  states: [A, B]
  matrix:
    - [0, 1]
    - [1, 0]
  initial: A
`), 0o600))

	sc, err := loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "markov", sc.Process)
	assert.Equal(t, 3, sc.Steps)
	require.NotNil(t, sc.Seed)
	assert.Equal(t, int64(42), *sc.Seed)
	assert.Equal(t, []string{"A", "B"}, sc.Markov.States)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, sc.Markov.Matrix)
	assert.Equal(t, "A", sc.Markov.Initial)

	// An absent seed key must stay nil (OS-entropy fallback).
	path2 := filepath.Join(t.TempDir(), "noseed.yaml")
	require.NoError(t, os.WriteFile(path2, []byte("process: poisson\npoisson:\n  intervals: 3\n  rate: 0\n"), 0o600))
	sc2, err := loadScenario(path2)
	require.NoError(t, err)
	assert.Nil(t, sc2.Seed)
}

// TestDirectionsFor verifies the dim flag mapping.
func TestDirectionsFor(t *testing.T) {
	t.Parallel()

	for dim, want := range map[int]int{1: 2, 2: 4, 3: 6} {
		dirs, err := directionsFor(dim)
		require.NoError(t, err)
		assert.Len(t, dirs, want)
	}
	_, err := directionsFor(4)
	assert.Error(t, err)
}
