package config

import "sort"

var Presets = map[string]Config{
	"default": {Samples: DefaultSamples, Noise: DefaultNoise},
	"clean":   {Samples: 200, Noise: 0.0},
	"noisy":   {Samples: 200, Noise: 0.35},
	"dense":   {Samples: 1000, Noise: 0.10},
	"minimal": {Samples: 2, Noise: 0.0},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
