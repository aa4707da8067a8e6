package settings

import "sort"

// Kind identifies the value type of a known setting.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Defaults is the immutable default table: every known setting name with its
// fallback value. It seeds the snapshot when nothing is persisted yet and
// backs missing-key resolution (a persisted file from an older release may
// predate newly added settings). Never mutate it; take Clone() instead.
var Defaults = &Values{
	Bools: map[string]bool{
		"vsync":      true,
		"fullscreen": true,
		"ssao":       true,
		"bloom":      true,
		"motionblur": false,
		"showfps":    false,
		"subtitles":  true,
	},
	Ints: map[string]int{
		"framecap":       60,
		"msaa":           4,
		"anisotropy":     8,
		"shadowquality":  2,
		"texturequality": 2,
	},
	Floats: map[string]float64{
		"mastervolume":   1.0,
		"musicvolume":    0.5,
		"sfxvolume":      0.8,
		"gamma":          1.0,
		"fov":            75.0,
		"bloomintensity": 0.35,
		"fogdensity":     0.02,
	},
}

// TypeOf reports the kind of a setting known to the default table.
func TypeOf(name string) (Kind, bool) {
	if _, ok := Defaults.Bools[name]; ok {
		return KindBool, true
	}
	if _, ok := Defaults.Ints[name]; ok {
		return KindInt, true
	}
	if _, ok := Defaults.Floats[name]; ok {
		return KindFloat, true
	}
	return 0, false
}

// Names returns all known setting names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Defaults.Bools)+len(Defaults.Ints)+len(Defaults.Floats))
	for k := range Defaults.Bools {
		names = append(names, k)
	}
	for k := range Defaults.Ints {
		names = append(names, k)
	}
	for k := range Defaults.Floats {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
