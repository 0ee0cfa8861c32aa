package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

// Player fires sound effects without blocking the caller.
type Player interface {
	Play(s core.Sound)
	Close()
}

// Silent is a Player that discards every sound.
type Silent struct{}

// Play implements Player.
func (Silent) Play(core.Sound) {}

// Close implements Player.
func (Silent) Close() {}

// SpeakerPlayer plays a Bank through the system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	bank   *Bank
	closed bool
}

// NewSpeakerPlayer initializes the speaker for the bank's sample rate.
// The speaker is process-wide; create at most one SpeakerPlayer.
func NewSpeakerPlayer(bank *Bank) (*SpeakerPlayer, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &SpeakerPlayer{bank: bank}, nil
}

// Play queues s on the speaker mixer.
func (p *SpeakerPlayer) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if st := p.bank.Streamer(s); st != nil {
		speaker.Play(st)
	}
}

// Close stops playback and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.closed = true
}

// Open returns a speaker-backed Player when cfg enables audio and a
// Silent player otherwise. Synthesis or speaker failures are returned so
// the caller can abort startup.
func Open(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	bank, err := LoadBank(cfg)
	if err != nil {
		return nil, err
	}
	p, err := NewSpeakerPlayer(bank)
	if err != nil {
		return nil, err
	}
	return p, nil
}
