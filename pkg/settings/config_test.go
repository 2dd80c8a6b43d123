package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D1CED/octo/pkg/settings"
)

func TestNewConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c, err := settings.NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://aur.archlinux.org", c.AURURL)
	assert.Equal(t, 150, c.RequestSplitN)
	assert.Equal(t, settings.Ascending, c.SortMode)
	assert.Equal(t, path, c.Path())
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "octo", "config.json")

	c := settings.Defaults()
	c.SortBy = "popularity"
	c.SortMode = settings.Descending
	c.AUR = true
	require.NoError(t, c.Save(path))

	loaded, err := settings.NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "popularity", loaded.SortBy)
	assert.Equal(t, settings.Descending, loaded.SortMode)
	assert.True(t, loaded.AUR)
	assert.Contains(t, loaded.AsJSONString(), `"sortby": "popularity"`)
}

func TestConfigExpandsEnv(t *testing.T) {
	t.Setenv("OCTO_TEST_AUR", "https://aur.example.org")
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"aururl": "$OCTO_TEST_AUR"}`), 0o644))

	c, err := settings.NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://aur.example.org", c.AURURL)
	assert.Equal(t, "/etc/pacman.conf", c.PacmanConf)
}

func TestConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"syntax", `{"aururl": `},
		{"color", `{"color": "sometimes"}`},
		{"sort mode", `{"sortmode": "sideways"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := settings.NewConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/octo/config.json", settings.GetConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")
	assert.Equal(t, "/home/user/.config/octo/config.json", settings.GetConfigPath())
}

func TestColorMode(t *testing.T) {
	for s, want := range map[string]settings.ColorMode{
		"":       settings.ColorAuto,
		"auto":   settings.ColorAuto,
		"always": settings.ColorAlways,
		"never":  settings.ColorNever,
	} {
		got, err := settings.ParseColorMode(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := settings.ParseColorMode("rainbow")
	assert.Error(t, err)

	assert.True(t, settings.UseColor(settings.ColorAlways, false, false))
	assert.False(t, settings.UseColor(settings.ColorNever, true, true))
	assert.True(t, settings.UseColor(settings.ColorAuto, true, true))
	assert.False(t, settings.UseColor(settings.ColorAuto, true, false))
}
