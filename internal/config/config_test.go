//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/marquee"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expands to home", input: "~/static", expected: filepath.Join(home, "static")},
		{name: "absolute path unchanged", input: "/srv/static", expected: "/srv/static"},
		{name: "relative path unchanged", input: "./static", expected: "./static"},
		{name: "empty string unchanged", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, "portfolio.toml", paths[len(paths)-1])
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, path, cfg.Path)

	mc, err := cfg.Marquee.Build()
	require.NoError(t, err)
	assert.Equal(t, marquee.DefaultConfig(content.Stack...), mc)
}

func TestLoadMarqueeTable(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, `
port = "9000"

[marquee]
speed = 60
direction = "Right"
container_width = 960
gap = 0
pause_on_hover = false
fade_edges = true
fade_color = "#ffffff"

[[marquee.items]]
text = "Go"
link = "https://go.dev"

[[marquee.items]]
src = "images/gin.png"
alt = "Gin"
width = 120
height = 40
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)

	mc, err := cfg.Marquee.Build()
	require.NoError(t, err)
	assert.Equal(t, 60.0, mc.Speed)
	assert.Equal(t, marquee.Right, mc.Direction)
	assert.Equal(t, marquee.Px(960), mc.ContainerWidth)
	assert.Zero(t, mc.Gap)
	assert.False(t, mc.PauseOnHover)
	assert.True(t, mc.FadeEdges)
	assert.Equal(t, "#ffffff", mc.FadeColor)
	assert.Equal(t, 28.0, mc.ItemHeight, "unset keys keep defaults")
	require.Len(t, mc.Items, 2)
	assert.Equal(t, marquee.NodeItem{Content: "Go", Link: "https://go.dev"}, mc.Items[0])
	assert.Equal(t, marquee.ImageItem{Src: "images/gin.png", Alt: "Gin", Width: 120, Height: 40}, mc.Items[1])
}

func TestLoadStationaryMarquee(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[marquee]\nspeed = 0\n"))
	require.NoError(t, err)

	mc, err := cfg.Marquee.Build()
	require.NoError(t, err)
	assert.Zero(t, mc.Speed)
}

func TestLoadPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load(writeConfig(t, `port = "9000"`))
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad direction", body: "[marquee]\ndirection = \"up\""},
		{name: "bad width", body: "[marquee]\ncontainer_width = \"wide\""},
		{name: "negative speed", body: "[marquee]\nspeed = -4"},
		{name: "empty item", body: "[[marquee.items]]\nlink = \"https://x.dev\""},
		{name: "broken toml", body: "[marquee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestItemConfig(t *testing.T) {
	_, err := ItemConfig{}.item()
	assert.ErrorIs(t, err, ErrMissingItemContent)

	it, err := ItemConfig{Text: "Go", Src: "go.png"}.item()
	require.NoError(t, err)
	assert.Equal(t, marquee.KindImage, it.Kind(), "src wins")
}

func TestWatchReloads(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, "[marquee]\nspeed = 60")

	got := make(chan *Config, 4)
	unwatch, err := Watch(path, func(cfg *Config, err error) {
		if err != nil {
			return
		}
		select {
		case got <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer unwatch()

	require.NoError(t, os.WriteFile(path, []byte("[marquee]\nspeed = 90"), 0o600))

	// A truncating write can surface as more than one event.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Marquee.Speed == 90 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
}
