// Package timer implements the pomodoro phase machine that drives plant
// growth.
//
// A Timer is a plain value advanced by the caller's clock: every method
// takes the current time, nothing blocks and nothing ticks on its own.
// The host feeds Progress into the plant's age between repaints; the
// engine itself never sees the timer.
package timer

import "time"

// Phase is the timer's current activity.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStudy
	PhaseBreak
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStudy:
		return "study"
	case PhaseBreak:
		return "break"
	case PhaseDone:
		return "done"
	default:
		return "idle"
	}
}

// Event signals a phase boundary crossed by Tick.
type Event int

const (
	EventNone      Event = iota
	EventStudyDone       // a study phase finished; the plant is fully grown
	EventBreakDone       // a break finished; the next cycle's study started
	EventAllDone         // the final break finished; the timer is done
)

// Config holds the session plan.
type Config struct {
	Study  time.Duration // length of each study phase
	Break  time.Duration // length of each break phase
	Cycles int           // number of study+break rounds, at least 1
}

// Timer is the pomodoro state machine. The zero value is unusable; use New.
// It is owned by a single goroutine.
type Timer struct {
	cfg      Config
	phase    Phase
	cycle    int // 1-based, valid while running
	deadline time.Time
	total    time.Duration // planned length of the current phase
	paused   bool
	pausedAt time.Time
}

// New creates an idle timer. A non-positive cycle count is treated as 1.
func New(cfg Config) *Timer {
	if cfg.Cycles < 1 {
		cfg.Cycles = 1
	}
	return &Timer{cfg: cfg}
}

// Start begins the first study phase.
func (t *Timer) Start(now time.Time) {
	t.cycle = 1
	t.startPhase(PhaseStudy, now)
}

// StartBreak begins a break without a preceding study phase.
func (t *Timer) StartBreak(now time.Time) {
	t.cycle = t.cfg.Cycles // a bare break never cycles back into study
	t.startPhase(PhaseBreak, now)
}

func (t *Timer) startPhase(phase Phase, now time.Time) {
	t.phase = phase
	t.paused = false
	t.total = t.cfg.Study
	if phase == PhaseBreak {
		t.total = t.cfg.Break
	}
	t.deadline = now.Add(t.total)
}

// Pause freezes the countdown. Pausing an idle, done, or already paused
// timer does nothing.
func (t *Timer) Pause(now time.Time) {
	if t.paused || t.phase == PhaseIdle || t.phase == PhaseDone {
		return
	}
	t.paused = true
	t.pausedAt = now
}

// Resume continues a paused countdown, shifting the deadline by the time
// spent paused.
func (t *Timer) Resume(now time.Time) {
	if !t.paused {
		return
	}
	t.deadline = t.deadline.Add(now.Sub(t.pausedAt))
	t.paused = false
}

// Reset returns the timer to idle.
func (t *Timer) Reset() {
	t.phase = PhaseIdle
	t.paused = false
	t.cycle = 0
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Paused reports whether the countdown is frozen.
func (t *Timer) Paused() bool { return t.paused }

// Cycle returns the 1-based current cycle while running.
func (t *Timer) Cycle() int { return t.cycle }

// Cycles returns the planned number of cycles.
func (t *Timer) Cycles() int { return t.cfg.Cycles }

// PhaseLength returns the planned length of the current phase.
func (t *Timer) PhaseLength() time.Duration { return t.total }

// Remaining returns the time left in the current phase, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if t.phase == PhaseIdle || t.phase == PhaseDone {
		return 0
	}
	if t.paused {
		now = t.pausedAt
	}
	if rem := t.deadline.Sub(now); rem > 0 {
		return rem
	}
	return 0
}

// Progress returns how far the current phase has advanced, in [0,1].
// During a study phase this is the plant's age.
func (t *Timer) Progress(now time.Time) float64 {
	switch t.phase {
	case PhaseIdle:
		return 0
	case PhaseDone:
		return 1
	}
	if t.total <= 0 {
		return 1
	}
	p := 1 - float64(t.Remaining(now))/float64(t.total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Tick advances the machine across any phase boundary the clock has
// passed and reports the boundary crossed, if any. A paused timer never
// advances.
func (t *Timer) Tick(now time.Time) Event {
	if t.paused || t.phase == PhaseIdle || t.phase == PhaseDone {
		return EventNone
	}
	if t.Remaining(now) > 0 {
		return EventNone
	}

	switch t.phase {
	case PhaseStudy:
		t.startPhase(PhaseBreak, now)
		return EventStudyDone
	case PhaseBreak:
		if t.cycle < t.cfg.Cycles {
			t.cycle++
			t.startPhase(PhaseStudy, now)
			return EventBreakDone
		}
		t.phase = PhaseDone
		return EventAllDone
	}
	return EventNone
}
