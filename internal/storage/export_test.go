// ABOUTME: Tests for export rendering and import round-trips.
// ABOUTME: Uses testify for the denser structural assertions.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/beastmode/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t)

	require.NoError(t, db.SaveProfile(testProfile()))

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	c := models.NewCycle("Testosterone Enanthate", "250mg", "2x per week", start, 10)
	c.WithNotes("with labs")
	require.NoError(t, db.CreateCycle(c))

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.LogWater(day, 1500))

	return db
}

func TestGetAllData(t *testing.T) {
	db := populatedDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "beastmode", data.Tool)
	require.NotNil(t, data.Profile)
	assert.Equal(t, "Carlos", data.Profile.Name)
	require.Len(t, data.Cycles, 1)
	assert.Equal(t, "Testosterone Enanthate", data.Cycles[0].Compound)
	require.Len(t, data.Water, 1)
	assert.Equal(t, 1500, data.Water[0].ConsumedML)
}

func TestGetAllDataWithoutProfile(t *testing.T) {
	db := setupTestDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)
	assert.Nil(t, data.Profile)
	assert.Empty(t, data.Cycles)
}

func TestRenderJSONRoundTrip(t *testing.T) {
	db := populatedDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)

	raw, err := RenderJSON(data)
	require.NoError(t, err)

	parsed, err := ParseJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, data.Profile.Name, parsed.Profile.Name)
	require.Len(t, parsed.Cycles, 1)
	assert.Equal(t, data.Cycles[0].ID, parsed.Cycles[0].ID)
	assert.Equal(t, data.Water, parsed.Water)
}

func TestRenderYAML(t *testing.T) {
	db := populatedDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)

	raw, err := RenderYAML(data)
	require.NoError(t, err)

	out := string(raw)
	assert.Contains(t, out, "tool: beastmode")
	assert.Contains(t, out, "compound: Testosterone Enanthate")
	assert.Contains(t, out, "start_date: \"2026-02-01\"")
	// Cycle ids are shortened for display.
	assert.Contains(t, out, data.Cycles[0].ID.String()[:8])
	assert.NotContains(t, out, data.Cycles[0].ID.String())
}

func TestRenderMarkdown(t *testing.T) {
	db := populatedDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)

	// 5 weeks into a 10-week cycle.
	asOf := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	out := RenderMarkdown(data, asOf)

	assert.True(t, strings.HasPrefix(out, "# Beastmode Export - 2026-03-08"))
	assert.Contains(t, out, "## Profile")
	assert.Contains(t, out, "- Goal: gain-muscle")
	assert.Contains(t, out, "## Cycles")
	assert.Contains(t, out, "| Testosterone Enanthate | 250mg | 2x per week | 2026-02-01 | 10 | 50% |")
	assert.Contains(t, out, "| 2026-08-29 | 1500 ml |")
}

func TestRenderMarkdownFinishedCycle(t *testing.T) {
	db := populatedDB(t)

	data, err := db.GetAllData()
	require.NoError(t, err)

	asOf := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	out := RenderMarkdown(data, asOf)
	assert.Contains(t, out, "| finished |")
}

func TestImportData(t *testing.T) {
	src := populatedDB(t)
	dst := setupTestDB(t)

	data, err := src.GetAllData()
	require.NoError(t, err)
	require.NoError(t, dst.ImportData(data))

	got, err := dst.GetAllData()
	require.NoError(t, err)
	assert.Equal(t, data.Profile.Name, got.Profile.Name)
	require.Len(t, got.Cycles, 1)
	assert.Equal(t, data.Cycles[0].ID, got.Cycles[0].ID)
	assert.Equal(t, data.Water, got.Water)
}
