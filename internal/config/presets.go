package config

import "sort"

// Size is a named canvas size.
type Size struct {
	Height int
	Width  int
}

var Presets = map[string]Size{
	"thumbnail": {Height: 64, Width: 64},
	"small":     {Height: 384, Width: 512},
	"default":   {Height: 768, Width: 1024},
	"square":    {Height: 1024, Width: 1024},
	"hd":        {Height: 1080, Width: 1920},
	"banner":    {Height: 256, Width: 1536},
}

func GetPreset(name string) (Size, bool) {
	s, ok := Presets[name]
	return s, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites the size with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	s, ok := GetPreset(name)
	if !ok {
		return false
	}
	c.Height, c.Width = s.Height, s.Width
	return true
}
