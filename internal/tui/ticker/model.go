// Package ticker renders a seamless marquee in the terminal.
package ticker

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/marquee"
)

var lastOwner int64

func nextOwner() int {
	return int(atomic.AddInt64(&lastOwner, 1))
}

// Options control how configured pixel sizes map onto terminal cells.
type Options struct {
	CellWidth  int // pixels per cell column, default 8
	CellHeight int // pixels per cell row, default 16
	// ImageRoot is the directory image sources are resolved against.
	ImageRoot string
	// Foreground is assumed for uncolored cells when fading edges.
	Foreground string
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 16
	}
	if o.ImageRoot == "" {
		o.ImageRoot = "."
	}
	if o.Foreground == "" {
		o.Foreground = "#e6e6eb"
	}
	return o
}

// Model is a marquee bound to one terminal region. Messages for an
// instance that was closed or reconfigured are ignored.
type Model struct {
	id     int
	opts   Options
	cfg    marquee.Config
	engine *marquee.Engine
	loop   frameLoop

	// gen changes whenever the item layout is rebuilt; image loads from an
	// older generation are dropped.
	gen     int
	tracker *marquee.ImageTracker
	images  map[int]Grid

	rows    int
	gapCols int
	seq     Grid
	colItem []int // item index per sequence column, -1 in gaps

	parentCols    int
	containerCols int
	top, left     int
	pointerCol    int
}

func New(cfg marquee.Config, opts Options) *Model {
	m := &Model{
		id:         nextOwner(),
		opts:       opts.withDefaults(),
		pointerCol: -1,
	}
	m.loop.owner = m.id
	m.setLayout(cfg)
	m.engine = marquee.NewEngine(m.scaled(), marquee.ProberFunc(m.probe))
	m.engine.Track(m.loop.Stop)
	return m
}

// Init starts the frame loop and the image loads.
func (m *Model) Init() tea.Cmd {
	if !m.engine.Mounted() {
		return nil
	}
	return tea.Batch(m.loop.Start(), m.loadImages())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.loop.accept(msg) {
			return nil
		}
		m.engine.Tick(msg.at)
		return m.loop.next()

	case imageLoadedMsg:
		if msg.owner != m.id || msg.gen != m.gen || !m.engine.Mounted() {
			return nil
		}
		if !m.tracker.Settle(msg.index, msg.err) {
			return nil
		}
		if msg.err != nil {
			log.Printf("ticker: image %d: %v", msg.index, msg.err)
		} else {
			m.images[msg.index] = msg.art
		}
		m.rebuild()
		m.engine.OnImagesSettled()

	case tea.MouseMsg:
		m.pointer(msg.X, msg.Y)
	}
	return nil
}

// SetWidth sets the width of the parent region in cells.
func (m *Model) SetWidth(parent int) {
	if !m.engine.Mounted() {
		return
	}
	m.parentCols = max(parent, 0)
	m.containerCols = m.resolveContainer()
	m.engine.OnResize()
}

// SetPosition sets the screen row and column of the parent region so
// mouse events can be mapped onto the track.
func (m *Model) SetPosition(top, left int) {
	m.top, m.left = top, left
}

// SetConfig applies a new configuration. Layout changes rebuild the
// sequence and reload its images.
func (m *Model) SetConfig(cfg marquee.Config) tea.Cmd {
	if !m.engine.Mounted() {
		return nil
	}
	var cmd tea.Cmd
	if m.cfg.LayoutChanged(cfg) {
		m.setLayout(cfg)
		cmd = m.loadImages()
	} else {
		m.cfg = cfg
	}
	m.containerCols = m.resolveContainer()
	m.engine.OnConfigChange(m.scaled())
	m.engine.OnResize()
	return cmd
}

// Start resumes the frame loop after Stop.
func (m *Model) Start() tea.Cmd {
	if !m.engine.Mounted() {
		return nil
	}
	return m.loop.Start()
}

// Stop halts the frame loop. The first frame after a restart moves
// nothing.
func (m *Model) Stop() {
	m.loop.Stop()
	m.engine.Stop()
}

// Close unmounts the marquee for good, stopping its frame loop.
func (m *Model) Close() {
	m.engine.Unmount()
}

func (m *Model) Running() bool { return m.loop.Running() }
func (m *Model) State() marquee.State { return m.engine.State() }
func (m *Model) Config() marquee.Config { return m.cfg }
func (m *Model) Rows() int { return m.rows }
func (m *Model) SequenceCols() int { return m.seq.Cols() }
func (m *Model) ContainerCols() int { return m.containerCols }
func (m *Model) PendingImages() int { return m.tracker.Pending() }

// View renders the visible window of the track.
func (m *Model) View() string {
	rows := m.frame()
	if rows == nil {
		return ""
	}
	pad := strings.Repeat(" ", m.leftPad())
	lines := make([]string, len(rows))
	for r, row := range rows {
		lines[r] = pad + renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// frame returns the visible cells, edge fade and hover emphasis applied.
func (m *Model) frame() [][]Cell {
	if m.containerCols <= 0 || m.rows <= 0 {
		return nil
	}
	st := m.engine.State()
	seqCols := m.seq.Cols()
	start := windowStart(st.Offset, seqCols)

	emphasis := -1
	if m.cfg.ScaleOnHover && st.Hovered && m.pointerCol >= 0 && seqCols > 0 {
		emphasis = m.colItem[(start+m.pointerCol)%seqCols]
	}

	fade, fadeOK := colorful.Color{}, false
	if m.cfg.FadeEdges {
		if c, err := colorful.Hex(m.cfg.FadeColor); err == nil {
			fade, fadeOK = c, true
		}
	}
	fg, _ := colorful.Hex(m.opts.Foreground)

	out := make([][]Cell, m.rows)
	for r := range out {
		row := make([]Cell, m.containerCols)
		for x := range row {
			t := start + x
			row[x] = m.trackCell(r, t, st.CopyCount)
			if emphasis >= 0 && m.colItem[t%seqCols] == emphasis {
				row[x].Bold = true
			}
		}
		clipWide(row)
		if fadeOK {
			fadeEdges(row, fade, fg)
		}
		out[r] = row
	}
	return out
}

func (m *Model) trackCell(r, t, copies int) Cell {
	seqCols := m.seq.Cols()
	if seqCols == 0 || t/seqCols >= copies {
		return blank
	}
	return m.seq[r][t%seqCols]
}

// windowStart maps the track offset to the first visible track column.
func windowStart(offset float64, seqCols int) int {
	if seqCols <= 0 {
		return 0
	}
	s := math.Mod(-offset, float64(seqCols))
	if s < 0 {
		s += float64(seqCols)
	}
	return int(s) % seqCols
}

// clipWide blanks wide runes cut by the window edges.
func clipWide(row []Cell) {
	if len(row) == 0 {
		return
	}
	if row[0].Cont {
		row[0] = Cell{Rune: ' ', BG: row[0].BG, HasBG: row[0].HasBG}
	}
	last := len(row) - 1
	if runewidth.RuneWidth(row[last].Rune) == 2 && !row[last].Cont {
		row[last] = Cell{Rune: ' ', BG: row[last].BG, HasBG: row[last].HasBG}
	}
}

// fadeEdges blends the outer tenth of the row on each side toward fade.
func fadeEdges(row []Cell, fade, fg colorful.Color) {
	n := max(1, len(row)/10)
	for x := 0; x < n && x < len(row); x++ {
		amount := 1 - float64(x)/float64(n)
		fadeCell(&row[x], fade, fg, amount)
		if r := len(row) - 1 - x; r != x {
			fadeCell(&row[r], fade, fg, amount)
		}
	}
}

func fadeCell(c *Cell, fade, fg colorful.Color, amount float64) {
	base := fg
	if c.HasFG {
		base = c.FG
	}
	c.FG = base.BlendLab(fade, amount).Clamped()
	c.HasFG = true
	if c.HasBG {
		c.BG = c.BG.BlendLab(fade, amount).Clamped()
	}
}

func (m *Model) leftPad() int {
	return max(0, (m.parentCols-m.containerCols)/2)
}

func (m *Model) pointer(x, y int) {
	if !m.engine.Mounted() {
		return
	}
	left := m.left + m.leftPad()
	inside := y >= m.top && y < m.top+m.rows && x >= left && x < left+m.containerCols
	if inside {
		m.pointerCol = x - left
	} else {
		m.pointerCol = -1
	}
	m.engine.SetHover(inside)
}

func (m *Model) probe() (marquee.Dimensions, bool) {
	d := marquee.Dimensions{
		Sequence:  float64(m.seq.Cols()),
		Container: float64(m.containerCols),
	}
	return d, d.Valid()
}

// scaled converts the configuration to cell units for the engine.
func (m *Model) scaled() marquee.Config {
	c := m.cfg
	c.Speed /= float64(m.opts.CellWidth)
	c.Gap = float64(m.gapCols)
	c.ItemHeight = float64(m.rows)
	return c
}

func (m *Model) resolveContainer() int {
	w := m.cfg.ContainerWidth
	cols := w.Value / float64(m.opts.CellWidth)
	if w.Unit == marquee.UnitPercent {
		cols = w.Resolve(float64(m.parentCols))
	}
	return min(m.parentCols, int(math.Floor(cols)))
}

// setLayout starts a new item generation for cfg.
func (m *Model) setLayout(cfg marquee.Config) {
	m.cfg = cfg
	m.gen++
	m.rows = max(1, int(math.Round(cfg.ItemHeight/float64(m.opts.CellHeight))))
	m.gapCols = max(0, int(math.Round(cfg.Gap/float64(m.opts.CellWidth))))
	m.tracker = marquee.NewImageTracker(marquee.Images(cfg.Items)...)
	m.images = make(map[int]Grid)
	m.rebuild()
}

func (m *Model) loadImages() tea.Cmd {
	var cmds []tea.Cmd
	for _, i := range marquee.Images(m.cfg.Items) {
		img := m.cfg.Items[i].(marquee.ImageItem)
		cmds = append(cmds, loadImageCmd(m.id, m.gen, i, m.opts.ImageRoot, img.Src, m.rows))
	}
	return tea.Batch(cmds...)
}

// rebuild lays out one sequence: every item followed by the gap.
func (m *Model) rebuild() {
	seq := newGrid(m.rows, 0)
	var colItem []int
	for i, it := range m.cfg.Items {
		block := m.itemBlock(i, it)
		seq = appendGrid(seq, block)
		for range block.Cols() {
			colItem = append(colItem, i)
		}
		seq = appendGrid(seq, newGrid(m.rows, m.gapCols))
		for range m.gapCols {
			colItem = append(colItem, -1)
		}
	}
	m.seq = seq
	m.colItem = colItem
}

func (m *Model) itemBlock(i int, it marquee.Item) Grid {
	var g Grid
	switch v := it.(type) {
	case marquee.NodeItem:
		fg, err := colorful.Hex(v.Color)
		g = m.textBlock(textCells(v.Content, fg, err == nil))
	case marquee.ImageItem:
		switch {
		case m.images[i] != nil:
			g = cloneGrid(m.images[i])
		case m.tracker.Err(i) != nil:
			alt := v.Alt
			if alt == "" {
				alt = "image"
			}
			g = m.textBlock(textCells("["+alt+"]", colorful.Color{}, false))
		default:
			// Not decoded yet: no intrinsic size.
			g = newGrid(m.rows, 0)
		}
	default:
		panic(fmt.Sprintf("ticker: unhandled marquee item %T", it))
	}
	if href := it.Href(); href != "" {
		for r := range g {
			for c := range g[r] {
				g[r][c].Link = href
			}
		}
	}
	return g
}

// textBlock centers one row of cells vertically in the item height.
func (m *Model) textBlock(cells []Cell) Grid {
	g := newGrid(m.rows, len(cells))
	copy(g[(m.rows-1)/2], cells)
	return g
}

func cloneGrid(src Grid) Grid {
	g := make(Grid, len(src))
	for r := range src {
		g[r] = append([]Cell(nil), src[r]...)
	}
	return g
}
