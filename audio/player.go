package audio

import (
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// splatterPitch tweaks the splat synth per ink color so the colors read
// differently by ear.
var splatterPitch = map[string]float64{
	"dark_blue": 140,
	"purple":    160,
	"green":     180,
	"red":       200,
	"rainbow":   260,
}

// Player synthesizes game sounds through the speaker. It implements the
// engine's effect sink so collision reactions trigger audio without the
// engine importing beep.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer creates a player with the given master volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and attaches the mixer. Safe to call more
// than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker Close, so clearing
// the mixer is the best we can do.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// PlayEffect triggers a visual effect's audio counterpart. Splatter
// effects carry the ink color in their name and select a pitch from it.
// Position is ignored; the mix is mono.
func (p *Player) PlayEffect(name string, x, y float64) {
	if color, ok := strings.CutPrefix(name, "splatter_"); ok {
		p.play(splatSound(splatterPitchFor(color)))
	}
}

// PlaySound plays a named one-shot sound. Unknown names are dropped.
func (p *Player) PlaySound(name string) {
	switch name {
	case "splat":
		p.play(splatSound(splatterPitch["dark_blue"]))
	case "ship_sinking":
		p.play(sinkingSound())
	case "ship_sunk":
		p.play(sunkSound())
	case "shield_deflect":
		p.play(deflectSound())
	case "shield_block":
		p.play(blockSound())
	case "pickup":
		p.play(pickupSound())
	case "hit":
		p.play(hitSound())
	}
}

// SetMuted toggles playback without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || s == nil {
		return
	}
	p.mixer.Add(newVolume(s, p.volume))
}

func splatterPitchFor(color string) float64 {
	if f, ok := splatterPitch[color]; ok {
		return f
	}
	return splatterPitch["dark_blue"]
}

// splatSound is a wet thud: a pitched sine drop with a noise burst on top.
func splatSound(freq float64) beep.Streamer {
	const dur = 120 * time.Millisecond

	body := NewOscillator(freq, dur, WaveSine, sampleRate)
	bodyShaped := NewEnvelope(body, dur, 2*time.Millisecond, 80*time.Millisecond, sampleRate)

	burst := NewOscillator(0, 40*time.Millisecond, WaveNoise, sampleRate)
	burstShaped := NewEnvelope(burst, 40*time.Millisecond, time.Millisecond, 30*time.Millisecond, sampleRate)

	return beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(burstShaped, 0.25),
	)
}

// sinkingSound is a slow descending groan.
func sinkingSound() beep.Streamer {
	const dur = 600 * time.Millisecond

	low := NewOscillator(90, dur, WaveSaw, sampleRate)
	return newVolume(NewEnvelope(low, dur, 50*time.Millisecond, 400*time.Millisecond, sampleRate), 0.4)
}

// sunkSound is a two-note descending chime marking the kill.
func sunkSound() beep.Streamer {
	const note = 180 * time.Millisecond

	n1 := NewEnvelope(NewOscillator(392.00, note, WaveSquare, sampleRate), note, 5*time.Millisecond, 120*time.Millisecond, sampleRate)
	n2 := NewEnvelope(NewOscillator(261.63, note, WaveSquare, sampleRate), note, 5*time.Millisecond, 140*time.Millisecond, sampleRate)
	return newVolume(beep.Seq(n1, n2), 0.5)
}

// deflectSound is a bright metallic ping.
func deflectSound() beep.Streamer {
	const dur = 90 * time.Millisecond

	fund := NewEnvelope(NewOscillator(1046.50, dur, WaveSine, sampleRate), dur, time.Millisecond, 70*time.Millisecond, sampleRate)
	over := NewEnvelope(NewOscillator(2093.00, dur, WaveSine, sampleRate), dur, time.Millisecond, 40*time.Millisecond, sampleRate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), 0.5)
}

// pickupSound is a quick rising two-note blip for an eaten fish.
func pickupSound() beep.Streamer {
	const note = 70 * time.Millisecond

	n1 := NewEnvelope(NewOscillator(523.25, note, WaveSine, sampleRate), note, 2*time.Millisecond, 40*time.Millisecond, sampleRate)
	n2 := NewEnvelope(NewOscillator(783.99, note, WaveSine, sampleRate), note, 2*time.Millisecond, 50*time.Millisecond, sampleRate)
	return newVolume(beep.Seq(n1, n2), 0.45)
}

// hitSound is a low thump for enemy contact on the octopus.
func hitSound() beep.Streamer {
	const dur = 110 * time.Millisecond

	body := NewOscillator(70, dur, WaveSine, sampleRate)
	burst := NewOscillator(0, 30*time.Millisecond, WaveNoise, sampleRate)
	return beep.Mix(
		newVolume(NewEnvelope(body, dur, time.Millisecond, 90*time.Millisecond, sampleRate), 0.5),
		newVolume(NewEnvelope(burst, 30*time.Millisecond, time.Millisecond, 25*time.Millisecond, sampleRate), 0.2),
	)
}

// blockSound is a dull knock for a shield that absorbed the hit.
func blockSound() beep.Streamer {
	const dur = 100 * time.Millisecond

	osc := NewOscillator(220, dur, WaveSquare, sampleRate)
	return newVolume(NewEnvelope(osc, dur, 2*time.Millisecond, 60*time.Millisecond, sampleRate), 0.35)
}
