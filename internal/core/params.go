package core

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the values currently exposed to the HUD.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an integer parameter that the HUD can step with
// +/- buttons. Bounds are inclusive.
type ParameterControl struct {
	Key   string
	Label string

	Step int
	Min  int
	Max  int
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if c.Max >= c.Min && v > c.Max {
		return c.Max
	}
	return v
}

// ParameterProvider exposes a snapshot of displayable values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
