package settings

import "math"

// Values is a full settings snapshot: three independent typed maps keyed by
// setting name. A name should appear in at most one map; the accessors only
// ever consult the map matching their type.
type Values struct {
	Bools  map[string]bool    `json:"bools"`
	Ints   map[string]int     `json:"ints"`
	Floats map[string]float64 `json:"floats"`
}

// NewValues returns an empty snapshot with all maps allocated.
func NewValues() *Values {
	return &Values{
		Bools:  make(map[string]bool),
		Ints:   make(map[string]int),
		Floats: make(map[string]float64),
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original,
// which keeps the default table safe when it is used as a seed.
func (v *Values) Clone() *Values {
	out := &Values{
		Bools:  make(map[string]bool, len(v.Bools)),
		Ints:   make(map[string]int, len(v.Ints)),
		Floats: make(map[string]float64, len(v.Floats)),
	}
	for k, val := range v.Bools {
		out.Bools[k] = val
	}
	for k, val := range v.Ints {
		out.Ints[k] = val
	}
	for k, val := range v.Floats {
		out.Floats[k] = val
	}
	return out
}

// Normalize allocates any maps left nil by a tolerant deserializer, so a
// partial persisted document never produces nil-map writes later.
func (v *Values) Normalize() {
	if v.Bools == nil {
		v.Bools = make(map[string]bool)
	}
	if v.Ints == nil {
		v.Ints = make(map[string]int)
	}
	if v.Floats == nil {
		v.Floats = make(map[string]float64)
	}
}

// roundFloat rounds to 3 decimal places. Floats are rounded before storage to
// bound file size and keep repeated read-modify-write cycles from
// accumulating noise.
func roundFloat(f float64) float64 {
	return math.Round(f*1000) / 1000
}
