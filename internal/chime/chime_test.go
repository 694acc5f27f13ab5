package chime

import (
	"testing"
	"time"
)

func TestOscillatorStream(t *testing.T) {
	osc := &oscillator{freq: 440, duration: 1000}

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := osc.Stream(buf)
		for i := range n {
			if v := buf[i][0]; v < -1 || v > 1 {
				t.Fatalf("sample %d = %v outside [-1,1]", total+i, v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d channels differ", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != 1000 {
		t.Errorf("streamed %d samples, want 1000", total)
	}
	if err := osc.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestOscillatorPhaseStaysBounded(t *testing.T) {
	osc := &oscillator{freq: 880, duration: 44100}
	buf := make([][2]float64, 1024)
	for {
		_, ok := osc.Stream(buf)
		if osc.phase < 0 || osc.phase >= 1 {
			t.Fatalf("phase %v escaped [0,1)", osc.phase)
		}
		if !ok {
			break
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	dur := 100 * time.Millisecond
	env := note(523.25, dur)

	buf := make([][2]float64, rate.N(dur))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d samples", n, len(buf))
	}

	// The first sample is fully attenuated by the attack ramp and the
	// tail is attenuated by the release ramp.
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	last := buf[n-1][0]
	if last < -0.01 || last > 0.01 {
		t.Errorf("final sample = %v, want near 0", last)
	}
	for i := range n {
		if v := buf[i][0]; v < -1 || v > 1 {
			t.Fatalf("sample %d = %v outside [-1,1]", i, v)
		}
	}
}

func TestEnvelopeGainNeverNegative(t *testing.T) {
	// Release starts before the oscillator ends; overshooting positions
	// clamp to silence instead of inverting the wave.
	osc := &oscillator{freq: 440, duration: rate.N(50 * time.Millisecond)}
	env := newEnvelope(osc, 40*time.Millisecond, time.Millisecond, 10*time.Millisecond)

	buf := make([][2]float64, rate.N(50*time.Millisecond))
	n, _ := env.Stream(buf)
	for i := rate.N(40 * time.Millisecond); i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d past note end = %v, want 0", i, buf[i][0])
		}
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(false)
	// Must not touch the speaker at all.
	p.StudyDone()
	p.BreakDone()
}
