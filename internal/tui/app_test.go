package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/marquee"
	"github.com/Zachkp/portfolio/internal/tui/ticker"
)

func newSizedModel(t *testing.T, width, height int) Model {
	t.Helper()
	cfg := marquee.DefaultConfig(
		marquee.NodeItem{Content: "Go"},
		marquee.NodeItem{Content: "Gin"},
	)
	cfg.ItemHeight = 16
	m := New(cfg, ticker.Options{CellWidth: 8, CellHeight: 16})
	require.NotNil(t, m.Init())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func TestViewBeforeSize(t *testing.T) {
	m := New(marquee.DefaultConfig(), ticker.Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestViewLayout(t *testing.T) {
	m := newSizedModel(t, 60, 30)
	view := ansi.Strip(m.View())
	rows := strings.Split(view, "\n")

	assert.Equal(t, content.Name, rows[0])
	assert.Contains(t, rows[headerRows], "Go")
	assert.Contains(t, rows[headerRows], "Gin")
	assert.Contains(t, view, "About Me")
	assert.Contains(t, rows[len(rows)-1], "q quit")
	assert.Len(t, rows, 30)
}

func TestPauseKeyTogglesLoop(t *testing.T) {
	m := newSizedModel(t, 60, 30)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.ticker.Running())
	assert.Contains(t, m.View(), "resume marquee")

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)
	assert.NotNil(t, cmd)
	assert.True(t, m.ticker.Running())
}

func TestQuitUnmountsMarquee(t *testing.T) {
	m := newSizedModel(t, 60, 30)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.ticker.Running())
}

func TestHoverReachesMarquee(t *testing.T) {
	m := newSizedModel(t, 60, 30)
	updated, _ := m.Update(tea.MouseMsg{X: 5, Y: headerRows, Action: tea.MouseActionMotion})
	m = updated.(Model)
	assert.True(t, m.ticker.State().Hovered)

	updated, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	m = updated.(Model)
	assert.False(t, m.ticker.State().Hovered)
}

func TestConfigReload(t *testing.T) {
	m := newSizedModel(t, 60, 30)

	next := marquee.DefaultConfig(marquee.NodeItem{Content: "Reloaded"})
	next.ItemHeight = 16
	updated, _ := m.Update(ConfigReloadedMsg{Config: next})
	m = updated.(Model)

	rows := strings.Split(ansi.Strip(m.View()), "\n")
	assert.Contains(t, rows[headerRows], "Reloaded")
	assert.Len(t, rows, 30)
}

func TestResizeRecomputesCopies(t *testing.T) {
	m := newSizedModel(t, 60, 30)
	small := m.ticker.State().CopyCount

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 30})
	m = updated.(Model)
	assert.Greater(t, m.ticker.State().CopyCount, small)
	assert.Equal(t, 200, m.ticker.ContainerCols())
}
