package sampler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munilab/transit-sampler-go/internal/spatial"
)

func TestLoadBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boundary.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[0,0],[0,1],[1,1],[1,0]]`), 0o644))

	b, err := LoadBoundary(path)
	require.NoError(t, err)
	assert.True(t, b.Contains(spatial.Point{Lat: 0.5, Lon: 0.5}))
	assert.False(t, b.Contains(spatial.Point{Lat: 1.5, Lon: 0.5}))
}

func TestLoadBoundaryBadInput(t *testing.T) {
	_, err := LoadBoundary(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "vertices"}`), 0o644))
	_, err = LoadBoundary(path)
	assert.Error(t, err)
}

func TestGeoJSON(t *testing.T) {
	b := SanFrancisco()

	data, err := json.Marshal(b.GeoJSON())
	require.NoError(t, err)

	var feature struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string         `json:"type"`
			Coordinates [][][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	}
	require.NoError(t, json.Unmarshal(data, &feature))

	assert.Equal(t, "Feature", feature.Type)
	assert.Equal(t, "Polygon", feature.Geometry.Type)
	require.Len(t, feature.Geometry.Coordinates, 1)
	ring := feature.Geometry.Coordinates[0]
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring is closed")
}
