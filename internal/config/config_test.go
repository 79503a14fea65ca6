package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lineup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 9, cfg.Search.LineupLen)
	assert.Equal(t, "remaining", cfg.Search.Bound)
	assert.Equal(t, "auto", cfg.Report.Color)
	assert.False(t, cfg.Roster.Random.Enabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
search:
  lineupLen: 5
  bound: none
roster:
  random: {left: 4, right: 3, seed: 11}
logging:
  level: debug
  format: json
`)
	t.Setenv("LINEUP_LEN", "6")
	t.Setenv("LINEUP_COLOR", "never")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Search.LineupLen, "env wins over file")
	assert.Equal(t, "none", cfg.Search.Bound)
	assert.Equal(t, config.RandomConfig{Left: 4, Right: 3, Seed: 11}, cfg.Roster.Random)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "never", cfg.Report.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search: [oops"))
	require.Error(t, err)

	t.Setenv("LINEUP_LEAF_LIMIT", "-3")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"negative len":  func(c *config.Config) { c.Search.LineupLen = -1 },
		"bad bound":     func(c *config.Config) { c.Search.Bound = "onetree" },
		"bad level":     func(c *config.Config) { c.Logging.Level = "loud" },
		"bad format":    func(c *config.Config) { c.Logging.Format = "xml" },
		"bad color":     func(c *config.Config) { c.Report.Color = "rainbow" },
		"negative rand": func(c *config.Config) { c.Roster.Random.Left = -1 },
		"path and random": func(c *config.Config) {
			c.Roster.Path = "team.yaml"
			c.Roster.Random.Left = 2
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
