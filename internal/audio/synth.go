package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// tone describes a synthesised cue.
type tone struct {
	from, to float64 // Hz, swept linearly
	length   time.Duration
	square   bool
}

var tones = map[core.Cue]tone{
	core.CueFlap:  {from: 520, to: 780, length: 90 * time.Millisecond},
	core.CueScore: {from: 880, to: 880, length: 120 * time.Millisecond},
	core.CueCoin:  {from: 1320, to: 1760, length: 110 * time.Millisecond},
	core.CueHit:   {from: 180, to: 90, length: 260 * time.Millisecond, square: true},
}

// sweep generates a frequency sweep with a short attack and linear release.
type sweep struct {
	tone  tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func newSweep(t tone, rate beep.SampleRate) *sweep {
	return &sweep{tone: t, rate: rate, total: rate.N(t.length)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	attack := s.rate.N(5 * time.Millisecond)

	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.tone.from + (s.tone.to-s.tone.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		if s.tone.square {
			val = math.Copysign(0.6, val)
		}

		env := 1 - progress
		if s.pos < attack {
			env *= float64(s.pos) / float64(attack)
		}
		val *= 0.25 * env

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// synthesize renders a cue's tone into a buffer, or nil for unknown cues.
func synthesize(cue core.Cue) *beep.Buffer {
	t, ok := tones[cue]
	if !ok {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(newSweep(t, sampleRate))
	return buf
}
