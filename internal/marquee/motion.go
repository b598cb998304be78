package marquee

import (
	"math"
	"time"
)

// MotionState is the state of the motion driver.
type MotionState int

const (
	Running MotionState = iota
	Paused
)

func (s MotionState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Velocity returns speed signed by direction: right is positive.
func Velocity(speed float64, d Direction) float64 {
	speed = math.Abs(speed)
	if d == Right {
		return speed
	}
	return -speed
}

// Motion advances the track offset from elapsed wall-clock time.
type Motion struct {
	velocity     float64
	pauseOnHover bool
	state        MotionState
	offset       float64
	lastTick     time.Time
}

// NewMotion returns a running driver.
func NewMotion(speed float64, d Direction, pauseOnHover bool) Motion {
	return Motion{
		velocity:     Velocity(speed, d),
		pauseOnHover: pauseOnHover,
	}
}

// Configure updates velocity and hover behaviour without touching the
// offset. Disabling pause-on-hover resumes a paused driver.
func (m *Motion) Configure(speed float64, d Direction, pauseOnHover bool) {
	m.velocity = Velocity(speed, d)
	m.pauseOnHover = pauseOnHover
	if !pauseOnHover {
		m.state = Running
	}
}

// PointerEnter pauses the driver when pause-on-hover is enabled.
func (m *Motion) PointerEnter() bool {
	if !m.pauseOnHover || m.state == Paused {
		return false
	}
	m.state = Paused
	return true
}

// PointerLeave resumes the driver.
func (m *Motion) PointerLeave() bool {
	if m.state == Running {
		return false
	}
	m.state = Running
	return true
}

// Tick advances the offset by velocity times the time elapsed since the
// previous tick. The first tick after a Reset moves nothing. Once the
// offset magnitude reaches sequenceWidth it is reset to zero; the reset
// drops at most one frame of travel. It reports whether the offset
// changed.
func (m *Motion) Tick(now time.Time, sequenceWidth float64) bool {
	var delta time.Duration
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	before := m.offset
	if m.state == Running {
		m.offset += m.velocity * delta.Seconds()
	}
	if sequenceWidth > 0 && math.Abs(m.offset) >= sequenceWidth {
		m.offset = 0
	}
	return m.offset != before
}

// Reset forgets the last tick so the next one computes a zero delta.
func (m *Motion) Reset() {
	m.lastTick = time.Time{}
}

// Rewind puts the track back at its origin.
func (m *Motion) Rewind() {
	m.offset = 0
	m.Reset()
}

func (m *Motion) Offset() float64 { return m.offset }
func (m *Motion) State() MotionState { return m.state }
func (m *Motion) Velocity() float64 { return m.velocity }
func (m *Motion) Started() bool { return !m.lastTick.IsZero() }
