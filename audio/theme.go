package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// sixteenth is one step of the theme at roughly 142 bpm
const sixteenth = 105 * time.Millisecond

// Per-note articulation
const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

// Track mix levels; their sum stays below 1
const (
	leadGain = 0.25
	bassGain = 0.15
)

// tone is a note held for a number of sixteenths
type tone struct {
	note  int
	steps int
}

var leadLine = []tone{
	{noteFs5, 2}, {noteGs5, 2}, {noteDs5, 1}, {noteDs5, 2}, {noteB4, 1},
	{noteD5, 1}, {noteCs5, 1}, {noteB4, 2}, {noteB4, 2}, {noteCs5, 2},

	{noteD5, 2}, {noteD5, 1}, {noteCs5, 1}, {noteB4, 1}, {noteCs5, 1},
	{noteDs5, 1}, {noteFs5, 1}, {noteGs5, 1}, {noteDs5, 1}, {noteFs5, 1},
	{noteCs5, 1}, {noteDs5, 1}, {noteB4, 1}, {noteCs5, 1}, {noteB4, 1},

	{noteDs5, 2}, {noteFs5, 2}, {noteGs5, 1}, {noteDs5, 1}, {noteFs5, 1},
	{noteCs5, 1}, {noteDs5, 1}, {noteB4, 1}, {noteD5, 1}, {noteDs5, 1},
	{noteD5, 1}, {noteCs5, 1}, {noteB4, 1}, {noteCs5, 1},

	{noteD5, 2}, {noteB4, 1}, {noteCs5, 1}, {noteDs5, 1}, {noteFs5, 1},
	{noteCs5, 1}, {noteDs5, 1}, {noteCs5, 1}, {noteB4, 1}, {noteCs5, 2},
	{noteB4, 2}, {noteCs5, 2},
}

// bassLine alternates root and fifth in eighths over four bars
var bassLine = func() []tone {
	var line []tone
	for _, pair := range [][2]int{
		{noteE3, noteB3},
		{noteFs3, noteCs4},
		{noteDs3, noteFs3},
		{noteGs3, noteDs4},
	} {
		for i := 0; i < 4; i++ {
			line = append(line, tone{pair[0], 2}, tone{pair[1], 2})
		}
	}
	return line
}()

// track plays a tone sequence forever
type track struct {
	tones []tone
	wave  WaveType
	rate  beep.SampleRate
	idx   int
	cur   beep.Streamer
}

func newTrack(tones []tone, wave WaveType, rate beep.SampleRate) *track {
	return &track{tones: tones, wave: wave, rate: rate}
}

// voice builds the shaped streamer for one tone
func (t *track) voice(tn tone) beep.Streamer {
	d := time.Duration(tn.steps) * sixteenth
	osc := newOscillator(NoteFreq(tn.note), d, t.wave, t.rate)
	return newEnvelope(osc, d, noteAttack, noteRelease, t.rate)
}

func (t *track) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if t.cur == nil {
			t.cur = t.voice(t.tones[t.idx])
			t.idx = (t.idx + 1) % len(t.tones)
		}
		m, more := t.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			t.cur = nil
		}
	}
	return n, true
}

func (t *track) Err() error { return nil }

// Theme is the looping square-wave melody over a bass line.
// It never drains; stop it by pausing or removing it from the mixer.
type Theme struct {
	lead *track
	bass *track
	tmp  [][2]float64
}

// NewTheme creates the theme at the given sample rate
func NewTheme(rate beep.SampleRate) *Theme {
	return &Theme{
		lead: newTrack(leadLine, WaveSquare, rate),
		bass: newTrack(bassLine, WaveSquare, rate),
	}
}

func (th *Theme) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(th.tmp) < len(samples) {
		th.tmp = make([][2]float64, len(samples))
	}
	tmp := th.tmp[:len(samples)]

	th.lead.Stream(samples)
	th.bass.Stream(tmp)
	for i := range samples {
		samples[i][0] = samples[i][0]*leadGain + tmp[i][0]*bassGain
		samples[i][1] = samples[i][1]*leadGain + tmp[i][1]*bassGain
	}
	return len(samples), true
}

func (th *Theme) Err() error { return nil }
