package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form parameters such as file paths.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a scene.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a scene.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by scenes that expose their parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable integer parameter that should be
// exposed on the HUD. Bounds are inclusive.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// Describe returns a copy of p carrying a help text.
func (p Parameter) Describe(text string) Parameter {
	p.Description = text
	return p
}

// StringParam builds a string Parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v}
}

// Int looks up an integer parameter value in the snapshot.
func (s ParameterSnapshot) Int(key string) (int, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key != key || p.Type != ParamTypeInt {
				continue
			}
			v, err := strconv.Atoi(p.Value)
			return v, err == nil
		}
	}
	return 0, false
}
