package config

import "sort"

var Presets = map[string]*Config{
	"circular": {
		Step: 7000, G: 1, M: 1, X: 1, Y: 0, VX: 0, VY: 1,
		Dt: 0.001, Buf: 100, ImgSize: 1024,
	},
	"elliptic": {
		Step: 20000, G: 1, M: 1, X: 1, Y: 0, VX: 0, VY: 1.2,
		Dt: 0.001, Buf: 200, ImgSize: 1024,
	},
	"escape": {
		Step: 10000, G: 1, M: 1, X: 1, Y: 0, VX: 0, VY: 1.5,
		Dt: 0.001, Buf: 100, ImgSize: 800,
	},
	"plunge": {
		Step: 5000, G: 1, M: 1, X: 1, Y: 0, VX: 0, VY: 0.3,
		Dt: 0.0005, Buf: 50, ImgSize: 800,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
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
