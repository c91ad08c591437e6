package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundChime SoundType = iota // Cab arrival
	SoundClick                  // Floor call accepted
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundClick:
		return "click"
	default:
		return "unknown"
	}
}

// AudioConfig holds volume and output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
	cfg.EffectVolumes[SoundChime] = 0.6
	cfg.EffectVolumes[SoundClick] = 0.3
	return cfg
}
