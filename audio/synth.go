package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave; freq 0 is silence
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates a wave streamer lasting duration
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
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
		if o.freq > 0 {
			switch o.wave {
			case WaveSine:
				val = math.Sin(2 * math.Pi * o.phase)
			case WaveSquare:
				if o.phase < 0.5 {
					val = 1.0
				} else {
					val = -1.0
				}
			case WaveSaw:
				val = 2.0 * (o.phase - 0.5)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// newEnvelope shapes s over duration; attack and release are clamped to fit
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attackSamples:
		return float64(e.position) / float64(e.attackSamples)
	case e.position >= e.totalSamples-e.releaseSamples && e.releaseSamples > 0:
		return float64(e.totalSamples-e.position) / float64(e.releaseSamples)
	default:
		return 1.0
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is handled by making it silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
