package marquee

import "time"

// Dimensions is one measurement of the rendered marquee.
type Dimensions struct {
	// Sequence is the width of exactly one copy of the items, gaps included.
	Sequence float64
	// Container is the width of the visible viewport.
	Container float64
}

// Valid reports whether the sequence has been laid out. A zero container
// is a usable reading; it just needs the minimum number of copies.
func (d Dimensions) Valid() bool {
	return d.Sequence > 0
}

// Prober measures the rendered sequence and its container. ok is false
// while content is not laid out yet.
type Prober interface {
	Probe() (d Dimensions, ok bool)
}

// ProberFunc adapts a function to Prober.
type ProberFunc func() (Dimensions, bool)

func (f ProberFunc) Probe() (Dimensions, bool) { return f() }

// State is a snapshot of the runtime state of an Engine.
type State struct {
	SequenceWidth  float64
	ContainerWidth float64
	CopyCount      int
	Offset         float64
	Hovered        bool
	Motion         MotionState
}

// Engine owns the runtime state of one mounted marquee. It is not safe
// for concurrent use: every event source must deliver on the same
// goroutine.
type Engine struct {
	cfg     Config
	prober  Prober
	motion  Motion
	dims    Dimensions
	copies  int
	hovered bool
	mounted bool
	subs    Subscriptions
}

// NewEngine mounts an engine for cfg and takes a first measurement.
func NewEngine(cfg Config, p Prober) *Engine {
	e := &Engine{
		cfg:     cfg,
		prober:  p,
		motion:  NewMotion(cfg.Speed, cfg.Direction, cfg.PauseOnHover),
		copies:  MinCopies,
		mounted: true,
	}
	e.reprobe()
	return e
}

// OnResize re-measures after the viewport or container changed size.
func (e *Engine) OnResize() bool {
	return e.reprobe()
}

// OnImagesSettled re-measures after an image finished loading, whether
// it succeeded or failed.
func (e *Engine) OnImagesSettled() bool {
	return e.reprobe()
}

// OnConfigChange applies a new configuration. Motion settings apply
// immediately; layout changes rewind the track and trigger a new
// measurement. The previous measurement is kept if the new one is not
// usable yet.
func (e *Engine) OnConfigChange(cfg Config) bool {
	if !e.mounted {
		return false
	}
	layout := e.cfg.LayoutChanged(cfg)
	e.cfg = cfg
	e.motion.Configure(cfg.Speed, cfg.Direction, cfg.PauseOnHover)
	if e.hovered {
		e.motion.PointerEnter()
	}
	if !layout {
		return false
	}
	e.motion.Rewind()
	e.reprobe()
	return true
}

// Tick advances the motion driver to now.
func (e *Engine) Tick(now time.Time) bool {
	if !e.mounted {
		return false
	}
	return e.motion.Tick(now, e.dims.Sequence)
}

// SetHover records pointer presence and pauses or resumes motion.
func (e *Engine) SetHover(hovered bool) bool {
	if !e.mounted || e.hovered == hovered {
		return false
	}
	e.hovered = hovered
	if hovered {
		e.motion.PointerEnter()
	} else {
		e.motion.PointerLeave()
	}
	return true
}

// Stop is called when the animation loop is torn down. The next Tick
// after a restart sees a zero delta.
func (e *Engine) Stop() {
	e.motion.Reset()
}

// Track registers an unsubscribe function to run on Unmount.
func (e *Engine) Track(unsubscribe func()) {
	e.subs.Add(unsubscribe)
}

// Unmount tears the engine down. Registered subscriptions are released
// and every later event is ignored.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.motion.Reset()
	e.subs.Close()
}

func (e *Engine) Mounted() bool { return e.mounted }
func (e *Engine) Config() Config { return e.cfg }

// State returns a snapshot of the runtime state.
func (e *Engine) State() State {
	return State{
		SequenceWidth:  e.dims.Sequence,
		ContainerWidth: e.dims.Container,
		CopyCount:      e.copies,
		Offset:         e.motion.Offset(),
		Hovered:        e.hovered,
		Motion:         e.motion.State(),
	}
}

func (e *Engine) reprobe() bool {
	if !e.mounted || e.prober == nil {
		return false
	}
	d, ok := e.prober.Probe()
	if !ok || !d.Valid() {
		return false
	}
	copies := CopyCount(d.Container, d.Sequence)
	if d == e.dims && copies == e.copies {
		return false
	}
	e.dims = d
	e.copies = copies
	return true
}
