// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

var (
	// ErrEmptySound is returned when a sound synthesizes to zero samples.
	ErrEmptySound = errors.New("audio: sound has no samples")
	// ErrBadSampleRate is returned for a non-positive sample rate.
	ErrBadSampleRate = errors.New("audio: sample rate must be positive")
)

// Effect durations.
const (
	hitBlockDuration  = 60 * time.Millisecond
	hitPlayerDuration = 90 * time.Millisecond
	hitFloorDuration  = 350 * time.Millisecond
	hitFloorTail      = 80 * time.Millisecond
)

// Bank holds pre-rendered buffers for every core.Sound.
type Bank struct {
	rate    beep.SampleRate
	buffers map[core.Sound]*beep.Buffer
}

// LoadBank synthesizes every sound at the configured rate and volume.
func LoadBank(cfg config.AudioConfig) (*Bank, error) {
	if cfg.SampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	rate := beep.SampleRate(cfg.SampleRate)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}

	b := &Bank{rate: rate, buffers: make(map[core.Sound]*beep.Buffer, core.SoundCount)}
	for s := core.Sound(0); s < core.SoundCount; s++ {
		src, err := synthesize(s, rate)
		if err != nil {
			return nil, fmt.Errorf("audio: synthesize %s: %w", s, err)
		}
		buf := beep.NewBuffer(format)
		buf.Append(newVolume(src, cfg.Volume))
		if buf.Len() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptySound, s)
		}
		b.buffers[s] = buf
	}
	return b, nil
}

// SampleRate returns the rate the bank was rendered at.
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Streamer returns a fresh streamer over the buffer of s, or nil if the
// bank has no such sound.
func (b *Bank) Streamer(s core.Sound) beep.StreamSeeker {
	buf, ok := b.buffers[s]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// Len returns the number of samples of s.
func (b *Bank) Len(s core.Sound) int {
	if buf, ok := b.buffers[s]; ok {
		return buf.Len()
	}
	return 0
}

// synthesize builds the raw streamer of one sound effect.
func synthesize(s core.Sound, rate beep.SampleRate) (beep.Streamer, error) {
	switch s {
	case core.SoundHitBlock:
		// Short square click (E5)
		osc := NewOscillator(659.25, hitBlockDuration, WaveSquare, rate)
		return NewEnvelope(osc, hitBlockDuration, 2*time.Millisecond, 45*time.Millisecond, rate), nil

	case core.SoundHitPlayer:
		// Round sine bump (A4 plus octave)
		tone, err := generators.SineTone(rate, 440)
		if err != nil {
			return nil, err
		}
		fund := NewEnvelope(beep.Take(rate.N(hitPlayerDuration), tone), hitPlayerDuration, 3*time.Millisecond, 70*time.Millisecond, rate)
		over := NewEnvelope(NewOscillator(880, hitPlayerDuration, WaveSine, rate), hitPlayerDuration, 3*time.Millisecond, 40*time.Millisecond, rate)
		return beep.Take(rate.N(hitPlayerDuration), beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))), nil

	case core.SoundHitFloor:
		// Low saw drop followed by a noise burst
		drop := NewEnvelope(NewOscillator(110, hitFloorDuration, WaveSaw, rate), hitFloorDuration, 5*time.Millisecond, 250*time.Millisecond, rate)
		thud := NewEnvelope(NewOscillator(0, hitFloorTail, WaveNoise, rate), hitFloorTail, time.Millisecond, 60*time.Millisecond, rate)
		total := rate.N(hitFloorDuration) + rate.N(hitFloorTail)
		return beep.Take(total, beep.Seq(newVolume(drop, 0.8), newVolume(thud, 0.4))), nil

	default:
		return nil, fmt.Errorf("unknown sound %d", s)
	}
}
