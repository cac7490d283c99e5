// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink receives sound cues. Play must never block the caller.
type Sink interface {
	Play(cue core.Cue)
	Close() error
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(core.Cue) {}
func (Silent) Close() error  { return nil }

// fileNames maps cues to their WAV asset.
var fileNames = map[core.Cue]string{
	core.CueFlap:  "jump.wav",
	core.CueScore: "score.wav",
	core.CueCoin:  "coin.wav",
	core.CueHit:   "hit.wav",
}

// FileName returns the WAV asset name for a cue.
func FileName(cue core.Cue) string {
	return fileNames[cue]
}

// Player mixes buffered cues into a single speaker stream.
type Player struct {
	mu      sync.Mutex
	sounds  map[core.Cue]*beep.Buffer
	mixer   *beep.Mixer
	volume  float64
	logger  *log.Logger
	started bool
}

// NewPlayer buffers every cue it can find. Cues without a WAV file are
// synthesised when cfg.Synth is set and stay silent otherwise.
func NewPlayer(cfg config.AudioConfig, loader *assets.Loader, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Player{
		sounds: make(map[core.Cue]*beep.Buffer, len(core.Cues)),
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		logger: logger,
	}

	for _, cue := range core.Cues {
		var fallback *beep.Buffer
		if cfg.Synth {
			fallback = synthesize(cue)
		}
		if buf := assets.Load(loader, FileName(cue), decodeWAV, fallback); buf != nil {
			p.sounds[cue] = buf
		}
	}
	return p
}

// Open returns a started player, or Silent when audio is disabled or the
// speaker cannot be opened.
func Open(cfg config.AudioConfig, loader *assets.Loader, logger *log.Logger) Sink {
	if !cfg.Enabled {
		return Silent{}
	}

	p := NewPlayer(cfg, loader, logger)
	if err := p.Start(); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return Silent{}
	}
	return p
}

// Start opens the speaker and begins streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Loaded reports whether a cue has a sound.
func (p *Player) Loaded(cue core.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sounds[cue] != nil
}

// Play starts a cue and returns immediately.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.sounds[cue]
	if !p.started || buf == nil {
		return
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
	return nil
}

// decodeWAV reads a whole WAV stream into a buffer at the speaker rate.
func decodeWAV(r io.Reader) (*beep.Buffer, error) {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	out := format
	out.SampleRate = sampleRate
	buf := beep.NewBuffer(out)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty sound")
	}
	return buf, nil
}
