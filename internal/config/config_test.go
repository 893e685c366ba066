package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, c.TopN)
	assert.Equal(t, 5, c.GDPRank)
	assert.Equal(t, []int{2, 3, 4, 5}, c.EnergyColumns)
	assert.Len(t, c.GDPYears, 10)
	assert.Equal(t, "2006", c.GDPYears[0])
	assert.Equal(t, "[edit]", c.TownsMarker)
	assert.InDelta(t, 0.01, c.Alpha, 1e-12)
	assert.True(t, c.EqualVar)
	assert.Equal(t, "markdown", c.OutputFormat)
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	c, err := Load(path)
	require.NoError(t, err)
	c.TopN = 10
	c.DataDir = "/srv/data"
	c.EqualVar = false
	require.NoError(t, Save(c, path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, again.TopN)
	assert.Equal(t, "/srv/data", again.DataDir)
	assert.False(t, again.EqualVar)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ECONLAB_TOP_N", "7")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.TopN)
}

func TestPath(t *testing.T) {
	c := &Global{DataDir: "data"}
	assert.Equal(t, filepath.Join("data", "x.csv"), c.Path("x.csv"))
	assert.Equal(t, "/abs/x.csv", c.Path("/abs/x.csv"))
	assert.Equal(t, "", c.Path(""))
}
