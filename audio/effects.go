package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect timing
const (
	ChimeNoteDuration = 220 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 180 * time.Millisecond

	ClickDuration = 30 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 20 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound generates the two-note arrival chime (E5 then C5)
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, ChimeNoteDuration, WaveSine, rate)
		return NewEnvelope(osc, ChimeNoteDuration, ChimeAttack, ChimeRelease, rate)
	}

	sequence := beep.Seq(note(659.25), note(523.25))

	vol := cfg.EffectVolumes[SoundChime] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateClickSound generates a short blip acknowledging a floor call
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, 1200)
	if err != nil {
		tone = NewOscillator(1200, ClickDuration, WaveSquare, rate)
	}
	shaped := NewEnvelope(beep.Take(rate.N(ClickDuration), tone), ClickDuration, ClickAttack, ClickRelease, rate)

	vol := cfg.EffectVolumes[SoundClick] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundClick:
		return CreateClickSound(cfg)
	default:
		return nil
	}
}
