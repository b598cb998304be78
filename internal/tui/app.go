// Package tui is the terminal edition of the portfolio.
package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/marquee"
	"github.com/Zachkp/portfolio/internal/tui/ticker"
)

// headerRows is the name, the tagline and a blank line.
const headerRows = 3

// ConfigReloadedMsg carries a marquee configuration read after the config
// file changed.
type ConfigReloadedMsg struct {
	Config marquee.Config
}

// ConfigErrorMsg reports a config file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

type Model struct {
	ticker   *ticker.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func New(mc marquee.Config, opts ticker.Options) Model {
	return Model{ticker: ticker.New(mc, opts)}
}

func (m Model) Init() tea.Cmd {
	return m.ticker.Init()
}

func (m Model) chromeRows() int {
	// header, marquee, blank line, help line
	return headerRows + m.ticker.Rows() + 2
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ticker.SetWidth(msg.Width)
		m.ticker.SetPosition(headerRows, 0)
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ticker.Close()
			return m, tea.Quit
		case "p":
			if m.ticker.Running() {
				m.ticker.Stop()
				return m, nil
			}
			return m, m.ticker.Start()
		}

	case ConfigReloadedMsg:
		cmd := m.ticker.SetConfig(msg.Config)
		m.resizeViewport()
		return m, cmd

	case ConfigErrorMsg:
		log.Printf("config reload: %v", msg.Err)
		return m, nil
	}

	cmd := m.ticker.Update(msg)
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m *Model) resizeViewport() {
	if m.width == 0 {
		return
	}
	height := max(1, m.height-m.chromeRows())
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.viewport.SetContent(renderSections(m.width))
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(nameStyle.Render(content.Name))
	b.WriteString("\n")
	b.WriteString(taglineStyle.Render(content.Tagline))
	b.WriteString("\n\n")
	b.WriteString(m.ticker.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	help := "↑/↓ scroll · p pause marquee · q quit"
	if !m.ticker.Running() {
		help = "↑/↓ scroll · p resume marquee · q quit"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// Run starts the terminal portfolio and blocks until it exits. When the
// configuration came from a file, edits to it are applied live.
func Run(cfg *config.Config) error {
	mc, err := cfg.Marquee.Build()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "portfolio")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	cellW, cellH := CellSize()
	m := New(mc, ticker.Options{CellWidth: cellW, CellHeight: cellH, ImageRoot: "."})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	var subs marquee.Subscriptions
	defer subs.Close()
	if cfg.Path != "" {
		unwatch, err := config.Watch(cfg.Path, func(next *config.Config, err error) {
			// Runs on the watcher goroutine; hand over to the program loop.
			if err != nil {
				p.Send(ConfigErrorMsg{Err: err})
				return
			}
			built, err := next.Marquee.Build()
			if err != nil {
				p.Send(ConfigErrorMsg{Err: err})
				return
			}
			p.Send(ConfigReloadedMsg{Config: built})
		})
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			subs.Add(unwatch)
		}
	}

	_, err = p.Run()
	return err
}
