package audio

// Config controls theme playback
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0 linear gain
	SampleRate int
}

// Defaults
const (
	DefaultVolume     = 0.5
	DefaultSampleRate = 44100
)

// DefaultConfig returns playback enabled at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     DefaultVolume,
		SampleRate: DefaultSampleRate,
	}
}
