package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/marquee"
)

const (
	appName        = "portfolio"
	configFileName = "config.toml"
	localFileName  = "portfolio.toml"
)

type Config struct {
	Port      string `koanf:"port"`
	StaticDir string `koanf:"static_dir"`
	ImagesDir string `koanf:"images_dir"`
	LogFile   string `koanf:"log_file"` // terminal mode only

	Marquee MarqueeConfig `koanf:"marquee"`

	// Path is the last config file that was loaded, empty if none.
	Path string `koanf:"-"`
}

// MarqueeConfig is the [marquee] table. Items default to the built-in
// tech stack when the table lists none.
type MarqueeConfig struct {
	Speed          float64      `koanf:"speed"`
	Direction      string       `koanf:"direction"`       // "left" or "right"
	ContainerWidth string       `koanf:"container_width"` // "100%", "960px" or 960
	ItemHeight     float64      `koanf:"item_height"`
	Gap            float64      `koanf:"gap"`
	PauseOnHover   bool         `koanf:"pause_on_hover"`
	FadeEdges      bool         `koanf:"fade_edges"`
	FadeColor      string       `koanf:"fade_color"`
	ScaleOnHover   bool         `koanf:"scale_on_hover"`
	AriaLabel      string       `koanf:"aria_label"`
	Items          []ItemConfig `koanf:"items"`
}

// ItemConfig is one [[marquee.items]] entry. An entry with src is an
// image, anything else is a text node.
type ItemConfig struct {
	Text   string `koanf:"text"`
	Src    string `koanf:"src"`
	Alt    string `koanf:"alt"`
	Link   string `koanf:"link"`
	Title  string `koanf:"title"`
	Label  string `koanf:"label"`
	Color  string `koanf:"color"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	SrcSet string `koanf:"srcset"`
	Sizes  string `koanf:"sizes"`
}

var ErrMissingItemContent = errors.New("marquee item needs text or src")

func defaults() *Config {
	return &Config{
		Port:      "8080",
		StaticDir: "./static",
		ImagesDir: "./images",
		LogFile:   "portfolio.log",
		Marquee: MarqueeConfig{
			Speed:          marquee.DefaultSpeed,
			Direction:      string(marquee.Left),
			ContainerWidth: "100%",
			ItemHeight:     marquee.DefaultItemHeight,
			Gap:            marquee.DefaultGap,
			PauseOnHover:   true,
			FadeColor:      marquee.DefaultFadeColor,
			AriaLabel:      marquee.DefaultAriaLabel,
		},
	}
}

// Load reads the config files in priority order. When explicit is set
// only that file is read and it must exist. PORT from the environment
// overrides the file.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config %s: %w", explicit, err)
		}
		paths = []string{explicit}
	}

	k := koanf.New(".")
	cfg := defaults()
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Path = path
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	cfg.StaticDir = expandPath(cfg.StaticDir)
	cfg.ImagesDir = expandPath(cfg.ImagesDir)
	cfg.Marquee.Direction = strings.ToLower(strings.TrimSpace(cfg.Marquee.Direction))

	if _, err := cfg.Marquee.Build(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/portfolio/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./portfolio.toml (highest priority)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Build converts the table into a validated marquee configuration.
func (m MarqueeConfig) Build() (marquee.Config, error) {
	width, err := marquee.ParseLength(m.ContainerWidth)
	if err != nil {
		return marquee.Config{}, fmt.Errorf("marquee container_width: %w", err)
	}

	items := content.Stack
	if len(m.Items) > 0 {
		items = make([]marquee.Item, 0, len(m.Items))
		for i, ic := range m.Items {
			it, err := ic.item()
			if err != nil {
				return marquee.Config{}, fmt.Errorf("marquee item %d: %w", i, err)
			}
			items = append(items, it)
		}
	}

	cfg := marquee.Config{
		Items:          items,
		Speed:          m.Speed,
		Direction:      marquee.Direction(m.Direction),
		ContainerWidth: width,
		ItemHeight:     m.ItemHeight,
		Gap:            m.Gap,
		PauseOnHover:   m.PauseOnHover,
		FadeEdges:      m.FadeEdges,
		FadeColor:      m.FadeColor,
		ScaleOnHover:   m.ScaleOnHover,
		AriaLabel:      m.AriaLabel,
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return marquee.Config{}, err
	}
	return cfg, nil
}

func (ic ItemConfig) item() (marquee.Item, error) {
	switch {
	case ic.Src != "":
		return marquee.ImageItem{
			Src:    ic.Src,
			Alt:    ic.Alt,
			Link:   ic.Link,
			Title:  ic.Title,
			Width:  ic.Width,
			Height: ic.Height,
			SrcSet: ic.SrcSet,
			Sizes:  ic.Sizes,
		}, nil
	case ic.Text != "":
		return marquee.NodeItem{
			Content: ic.Text,
			Link:    ic.Link,
			Title:   ic.Title,
			Label:   ic.Label,
			Color:   ic.Color,
		}, nil
	default:
		return nil, ErrMissingItemContent
	}
}
