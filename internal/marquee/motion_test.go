package marquee

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func frames(m *Motion, start time.Time, dt time.Duration, n int, seq float64) time.Time {
	now := start
	for range n {
		now = now.Add(dt)
		m.Tick(now, seq)
	}
	return now
}

func TestVelocitySign(t *testing.T) {
	assert.Equal(t, 120.0, Velocity(120, Right))
	assert.Equal(t, -120.0, Velocity(120, Left))
	assert.Equal(t, -120.0, Velocity(-120, Left), "speed is a magnitude")
}

func TestMotionFirstTickHasZeroDelta(t *testing.T) {
	m := NewMotion(120, Left, true)
	assert.False(t, m.Tick(epoch, 300))
	assert.Zero(t, m.Offset())

	m.Tick(epoch.Add(time.Second/2), 300)
	assert.InDelta(t, -60, m.Offset(), 1e-9)
}

func TestMotionFrameRateIndependent(t *testing.T) {
	fast := NewMotion(120, Right, false)
	slow := NewMotion(120, Right, false)
	fast.Tick(epoch, 0)
	slow.Tick(epoch, 0)

	frames(&fast, epoch, time.Second/120, 120, 0)
	frames(&slow, epoch, time.Second/30, 30, 0)

	assert.InDelta(t, 120, fast.Offset(), 1e-3)
	assert.InDelta(t, fast.Offset(), slow.Offset(), 1e-3)
}

func TestMotionWrapsAfterOneSequence(t *testing.T) {
	const seq = 300.0
	dt := time.Second / 60
	step := 120 * dt.Seconds()

	m := NewMotion(120, Left, true)
	m.Tick(epoch, seq)
	ticks := int(time.Duration(seq/120*float64(time.Second)) / dt)
	frames(&m, epoch, dt, ticks, seq)

	off := math.Abs(m.Offset())
	dist := math.Min(off, seq-off)
	assert.LessOrEqual(t, dist, step+1e-6)
	assert.Less(t, off, seq)
}

func TestMotionHardResetAtThreshold(t *testing.T) {
	m := NewMotion(100, Right, false)
	m.Tick(epoch, 250)
	m.Tick(epoch.Add(2*time.Second), 250)
	assert.InDelta(t, 200, m.Offset(), 1e-9)

	// 200 + 60 crosses 250: reset, not 10.
	m.Tick(epoch.Add(2600*time.Millisecond), 250)
	assert.Zero(t, m.Offset())
}

func TestMotionNoWrapWithoutWidth(t *testing.T) {
	m := NewMotion(100, Left, false)
	m.Tick(epoch, 0)
	m.Tick(epoch.Add(10*time.Second), 0)
	assert.InDelta(t, -1000, m.Offset(), 1e-9)

	// A measurement lands: the next tick wraps.
	m.Tick(epoch.Add(10*time.Second+time.Millisecond), 300)
	assert.Zero(t, m.Offset())
}

func TestMotionPauseOnHover(t *testing.T) {
	m := NewMotion(120, Left, true)
	now := frames(&m, epoch, 10*time.Millisecond, 20, 1000)
	held := m.Offset()

	assert.True(t, m.PointerEnter())
	assert.Equal(t, Paused, m.State())
	now = frames(&m, now, 10*time.Millisecond, 50, 1000)
	assert.Equal(t, held, m.Offset())

	assert.True(t, m.PointerLeave())
	frames(&m, now, 10*time.Millisecond, 10, 1000)
	assert.InDelta(t, held-12, m.Offset(), 1e-6)
}

func TestMotionHoverIgnoredWhenDisabled(t *testing.T) {
	m := NewMotion(120, Left, false)
	assert.False(t, m.PointerEnter())
	assert.Equal(t, Running, m.State())
}

func TestMotionResetClearsLastTick(t *testing.T) {
	m := NewMotion(120, Right, false)
	m.Tick(epoch, 1000)
	m.Tick(epoch.Add(time.Second), 1000)
	assert.True(t, m.Started())

	m.Reset()
	assert.False(t, m.Started())
	// A long gap while stopped must not turn into a jump.
	m.Tick(epoch.Add(time.Hour), 1000)
	assert.InDelta(t, 120, m.Offset(), 1e-9)
}

func TestMotionClockGoingBackwards(t *testing.T) {
	m := NewMotion(120, Right, false)
	m.Tick(epoch.Add(time.Second), 1000)
	m.Tick(epoch, 1000)
	assert.Zero(t, m.Offset())
}
