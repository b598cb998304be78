package ticker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// frameMsg is one animation frame. seq identifies the loop run that
// scheduled it.
type frameMsg struct {
	owner int
	seq   int
	at    time.Time
}

// frameLoop is a self-rescheduling frame task with an explicit
// start/stop handle. Frames scheduled before a Stop are discarded on
// arrival.
type frameLoop struct {
	owner   int
	seq     int
	running bool
}

// Start begins a new run and schedules its first frame. Starting a
// running loop is a no-op.
func (l *frameLoop) Start() tea.Cmd {
	if l.running {
		return nil
	}
	l.seq++
	l.running = true
	return l.next()
}

// Stop cancels the run; its pending frame will be dropped.
func (l *frameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.seq++
}

func (l *frameLoop) Running() bool { return l.running }

// accept reports whether msg belongs to the current run.
func (l *frameLoop) accept(msg frameMsg) bool {
	return l.running && msg.owner == l.owner && msg.seq == l.seq
}

func (l *frameLoop) next() tea.Cmd {
	owner, seq := l.owner, l.seq
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{owner: owner, seq: seq, at: t}
	})
}
