// SPDX-License-Identifier: MIT
// Package linsys_test contains test helpers and YAML fixture loading.

package linsys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hyperplane/linsys"
	"github.com/katalvlaran/hyperplane/plane"
	"github.com/katalvlaran/hyperplane/vector"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fixturePlane is normal·x = constant as written in testdata.
type fixturePlane struct {
	Normal   []float64 `yaml:"normal"`
	Constant float64   `yaml:"constant"`
}

// scenario is one golden TriangularForm case.
type scenario struct {
	Name   string         `yaml:"name"`
	Planes []fixturePlane `yaml:"planes"`
	Want   []fixturePlane `yaml:"want"`
}

// loadScenarios decodes testdata/scenarios.yaml or fails the test.
func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Scenarios)

	return doc.Scenarios
}

// mustPlane builds normal·x = k or fails the test.
func mustPlane(t testing.TB, k float64, normal ...float64) plane.Plane {
	t.Helper()
	n, err := vector.New(normal...)
	require.NoError(t, err)
	p, err := plane.New(n, k)
	require.NoError(t, err)

	return p
}

// mustSystem builds a system from fixture planes or fails the test.
func mustSystem(t testing.TB, fps []fixturePlane) *linsys.System {
	t.Helper()
	planes := make([]plane.Plane, len(fps))
	for i, fp := range fps {
		planes[i] = mustPlane(t, fp.Constant, fp.Normal...)
	}
	s, err := linsys.New(planes...)
	require.NoError(t, err)

	return s
}

// requireRows asserts s has exactly the rows want (plane.Equal semantics).
func requireRows(t *testing.T, want []plane.Plane, s *linsys.System) {
	t.Helper()
	require.Equal(t, len(want), s.Len())
	for i, w := range want {
		got, err := s.Row(i)
		require.NoError(t, err)
		require.True(t, w.Equal(got), "row %d: want %v, got %v", i, w, got)
	}
}
