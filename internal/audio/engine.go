// Package audio provides synthesized sound effects for game events.
// All sounds are generated waveforms; no sample assets are shipped.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const (
	dropDuration     = 80 * time.Millisecond
	mergeDuration    = 200 * time.Millisecond
	gameOverDuration = 900 * time.Millisecond
)

// Player owns the speaker and mixes one-shot effects into it. A nil
// Player is valid and silent, so callers can keep a single field and
// skip initialization when audio is disabled.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (p *Player) Initialize() error {
	if p == nil {
		return nil
	}
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

// Cleanup silences everything. The speaker itself cannot be closed, so
// clearing the mixer is as far as shutdown goes.
func (p *Player) Cleanup() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

func (p *Player) play(d time.Duration, g beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// PlayDrop plays the dull thunk of a released shape.
func (p *Player) PlayDrop() {
	p.play(dropDuration, newThunkGenerator(sampleRate))
}

// PlayMerge plays a chime whose pitch rises with the fused tier, so
// late-game fusions are audibly bigger events.
func (p *Player) PlayMerge(tier int) {
	p.play(mergeDuration, newChimeGenerator(sampleRate, tier))
}

// PlayGameOver plays a falling slide when the container overflows.
func (p *Player) PlayGameOver() {
	p.play(gameOverDuration, newSlideGenerator(sampleRate))
}

// thunkGenerator produces a short percussive hit: a low sine with a
// sharp exponential decay.
type thunkGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newThunkGenerator(sr beep.SampleRate) *thunkGenerator {
	return &thunkGenerator{sr: sr}
}

func (g *thunkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 40)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*95*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thunkGenerator) Err() error {
	return nil
}

// chimeGenerator produces a two-harmonic bell tone. The base frequency
// climbs a quarter octave per tier.
type chimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newChimeGenerator(sr beep.SampleRate, tier int) *chimeGenerator {
	if tier < 0 {
		tier = 0
	}
	return &chimeGenerator{
		sr:   sr,
		freq: 330 * math.Pow(2, float64(tier)/4),
	}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Short attack, ringing decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*12)

		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}

// slideGenerator produces a descending sweep from 400Hz down to 80Hz
// with a slow fade, used for the game-over sting.
type slideGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

func newSlideGenerator(sr beep.SampleRate) *slideGenerator {
	return &slideGenerator{sr: sr}
}

func (g *slideGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(gameOverDuration))
	for i := range samples {
		progress := math.Min(float64(g.pos)/total, 1.0)
		freq := 400 - 320*progress
		envelope := 0.3 * (1 - progress)

		// Integrate phase so the sweep stays continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *slideGenerator) Err() error {
	return nil
}
