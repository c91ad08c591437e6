package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// LoadAudioConfig applies environment overrides on top of base
// A nil base starts from DefaultAudioConfig
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		c := *base
		cfg = &c
	}

	if enabled := os.Getenv("ELEVATOR_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("ELEVATOR_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("ELEVATOR_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("ELEVATOR_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
