// Package chime plays short synthesized notification tones at phase
// transitions. Tones are generated in-process (sine oscillator with an
// attack/release envelope) so no sound assets ship with the binary.
package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const rate = beep.SampleRate(44100)

// Player owns the speaker. Construct it once; a Player whose speaker
// failed to initialize plays nothing and reports no errors — a machine
// without audio should not break the timer.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker when enabled is true. Initialization
// failure downgrades to a silent player.
func NewPlayer(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return &Player{}
	}
	return &Player{enabled: true}
}

// StudyDone rings the end-of-study bell: two ascending notes.
func (p *Player) StudyDone() {
	p.play(
		note(523.25, 180*time.Millisecond), // C5
		note(783.99, 320*time.Millisecond), // G5
	)
}

// BreakDone rings the end-of-break note.
func (p *Player) BreakDone() {
	p.play(note(659.25, 250*time.Millisecond)) // E5
}

func (p *Player) play(notes ...beep.Streamer) {
	if !p.enabled {
		return
	}
	seq := make([]beep.Streamer, len(notes))
	copy(seq, notes)
	speaker.Play(beep.Seq(seq...))
}

// note builds one enveloped sine tone.
func note(freq float64, dur time.Duration) beep.Streamer {
	osc := &oscillator{freq: freq, duration: rate.N(dur)}
	return newEnvelope(osc, dur, 10*time.Millisecond, 60*time.Millisecond)
}

// oscillator generates a raw sine wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps so
// notes start and stop without clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		gain := 1.0
		switch pos := e.position + i; {
		case pos < e.attackSamples:
			gain = float64(pos) / float64(e.attackSamples)
		case pos > e.totalSamples-e.releaseSamples:
			gain = float64(e.totalSamples-pos) / float64(e.releaseSamples)
		}
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	e.position += n
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
