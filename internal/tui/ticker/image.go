package ticker

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF logos
	_ "image/jpeg" // JPEG logos
	_ "image/png"  // PNG logos
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ErrRemoteImage is reported for image sources that would need a network
// fetch; those settle immediately and render their alt text.
var ErrRemoteImage = errors.New("remote images are not fetched")

// imageLoadedMsg reports one settled image load.
type imageLoadedMsg struct {
	owner int
	gen   int
	index int
	art   Grid
	err   error
}

// resolveImagePath maps an item source to a file under root. Web-style
// absolute paths ("/images/go.png") are taken relative to root.
func resolveImagePath(root, src string) (string, error) {
	if strings.Contains(src, "://") || strings.HasPrefix(src, "//") {
		return "", fmt.Errorf("%w: %s", ErrRemoteImage, src)
	}
	if filepath.IsAbs(src) {
		if _, err := os.Stat(src); err == nil {
			return src, nil
		}
	}
	return filepath.Join(root, strings.TrimPrefix(src, "/")), nil
}

func loadImageCmd(owner, gen, index int, root, src string, rows int) tea.Cmd {
	return func() tea.Msg {
		art, err := loadImage(root, src, rows)
		return imageLoadedMsg{owner: owner, gen: gen, index: index, art: art, err: err}
	}
}

func loadImage(root, src string, rows int) (Grid, error) {
	path, err := resolveImagePath(root, src)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return halfBlocks(img, rows), nil
}

// halfBlocks scales img to 2*rows pixels high, keeping its aspect ratio,
// and packs two pixels per cell with the upper half block. Terminal cells
// are about twice as tall as wide, so one pixel column maps to one cell.
func halfBlocks(img image.Image, rows int) Grid {
	rows = max(rows, 1)
	//nolint:gosec // rows is small
	scaled := resize.Resize(0, uint(rows*2), img, resize.Lanczos3)
	return packHalfBlocks(scaled, rows)
}

func packHalfBlocks(scaled image.Image, rows int) Grid {
	bounds := scaled.Bounds()
	g := newGrid(rows, bounds.Dx())
	for r := range rows {
		for x := range bounds.Dx() {
			top, topOK := pixel(scaled.At(bounds.Min.X+x, bounds.Min.Y+2*r))
			bot, botOK := pixel(scaled.At(bounds.Min.X+x, bounds.Min.Y+2*r+1))
			switch {
			case topOK && botOK:
				g[r][x] = Cell{Rune: '▀', FG: top, HasFG: true, BG: bot, HasBG: true}
			case topOK:
				g[r][x] = Cell{Rune: '▀', FG: top, HasFG: true}
			case botOK:
				g[r][x] = Cell{Rune: '▄', FG: bot, HasFG: true}
			}
		}
	}
	return g
}

// pixel converts c, reporting false for mostly transparent pixels.
func pixel(c color.Color) (colorful.Color, bool) {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return colorful.Color{}, false
	}
	cf, ok := colorful.MakeColor(c)
	return cf, ok
}
