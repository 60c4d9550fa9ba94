package audio

import "math"

// noteFrequencies holds MIDI notes 0-127, A4 (69) = 440Hz, equal temperament
var noteFrequencies [128]float64

func init() {
	for i := range noteFrequencies {
		noteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number, 0 when out of range
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(noteFrequencies) {
		return 0
	}
	return noteFrequencies[midi]
}

// MIDI note numbers used by the theme
const (
	noteDs3 = 51
	noteE3  = 52
	noteFs3 = 54
	noteGs3 = 56
	noteB3  = 59
	noteCs4 = 61
	noteDs4 = 63

	noteB4  = 71
	noteCs5 = 73
	noteD5  = 74
	noteDs5 = 75
	noteFs5 = 78
	noteGs5 = 80
)
