package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyPathFallsBackToPath(t *testing.T) {
	tgt := target{Path: "/instructors"}
	assert.Equal(t, "/instructors", tgt.legacyPath())

	tgt = target{Path: "/classes/approved", LegacyPath: "/approvedclass"}
	assert.Equal(t, "/approvedclass", tgt.legacyPath())
}

func TestLoadTargetsDecodesLegacyPath(t *testing.T) {
	targets, err := loadTargets("targets.json")
	require.NoError(t, err)
	require.NotEmpty(t, targets)

	byPath := map[string]target{}
	for _, tgt := range targets {
		byPath[tgt.Path] = tgt
	}
	assert.Equal(t, "/approvedclass", byPath["/classes/approved"].LegacyPath)
	assert.Equal(t, "/popularclass", byPath["/classes/popular"].LegacyPath)
	assert.Equal(t, "/selected", byPath["/selections"].LegacyPath)
}

func TestBodiesEqualStripsVolatileFields(t *testing.T) {
	goBody := []byte(`[{"id":"550e8400-e29b-41d4-a716-446655440000","name":"Guitar","price":20,"created_at":"2026-01-01T00:00:00Z"}]`)
	legacyBody := []byte(`[{"_id":"64b7f7e2c2a4f0d1e8a9b3c4","name":"Guitar","price":20}]`)

	assert.True(t, bodiesEqual(goBody, legacyBody))
}

func TestBodiesEqualDetectsRealDiff(t *testing.T) {
	assert.False(t, bodiesEqual(
		[]byte(`[{"name":"Guitar","price":20}]`),
		[]byte(`[{"name":"Guitar","price":25}]`),
	))
}
