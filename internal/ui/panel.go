// Package ui holds the GUI player's side panel and debugging overlay. The
// panel text and parameter stepping live here untagged; drawing needs the
// ebiten build tag.
package ui

import (
	"fmt"
	"strings"

	"montyhall/internal/core"
)

// Status is what the panel reports about playback.
type Status struct {
	Scene    string
	Time     float64
	Duration float64
	Step     int
	Steps    int
	Paused   bool
	Seed     int64
}

// Lines formats the playback block of the panel.
func (s Status) Lines() []string {
	state := "playing"
	if s.Paused {
		state = "paused"
	}
	return []string{
		s.Scene,
		fmt.Sprintf("t %5.1f / %.1fs", s.Time, s.Duration),
		fmt.Sprintf("step %d / %d", s.Step+1, s.Steps),
		fmt.Sprintf("seed %d  %s", s.Seed, state),
	}
}

// ParamLines lists every parameter of the snapshot under its group name.
func ParamLines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, g.Name)
		for _, p := range g.Params {
			v := p.Value
			if v == "" {
				v = "--"
			}
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, v))
		}
	}
	return out
}

// Controls steps a scene's integer parameters.
type Controls struct {
	list     []core.ParameterControl
	selected int
	setter   core.IntParameterSetter
	provider core.ParameterProvider
}

// NewControls collects the adjustable parameters of sc. It returns nil when
// the scene has none.
func NewControls(sc core.Scene) *Controls {
	cp, ok := sc.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	setter, ok := sc.(core.IntParameterSetter)
	if !ok {
		return nil
	}
	provider, _ := sc.(core.ParameterProvider)
	list := cp.ParameterControls()
	if len(list) == 0 {
		return nil
	}
	return &Controls{list: list, setter: setter, provider: provider}
}

// Selected returns the control that [ and ] act on.
func (c *Controls) Selected() (core.ParameterControl, bool) {
	if c == nil || len(c.list) == 0 {
		return core.ParameterControl{}, false
	}
	return c.list[c.selected], true
}

// Select moves the selection by delta, wrapping around.
func (c *Controls) Select(delta int) {
	if c == nil || len(c.list) == 0 {
		return
	}
	n := len(c.list)
	c.selected = ((c.selected+delta)%n + n) % n
}

func (c *Controls) value(key string) (int, bool) {
	if c.provider == nil {
		return 0, false
	}
	return c.provider.Parameters().Int(key)
}

// Adjust moves the selected parameter one step in direction dir, clamped to
// its bounds, and reports whether the scene accepted a new value.
func (c *Controls) Adjust(dir int) bool {
	ctl, ok := c.Selected()
	if !ok || dir == 0 {
		return false
	}
	cur, ok := c.value(ctl.Key)
	if !ok {
		return false
	}
	step := ctl.Step
	if step <= 0 {
		step = 1
	}
	target := min(max(cur+dir*step, ctl.Min), ctl.Max)
	if target == cur {
		return false
	}
	return c.setter.SetIntParameter(ctl.Key, target)
}

// Lines formats the controls, marking the selected one.
func (c *Controls) Lines() []string {
	if c == nil || len(c.list) == 0 {
		return []string{"No adjustable parameters"}
	}
	out := make([]string, 0, len(c.list)+1)
	for i, ctl := range c.list {
		mark := " "
		if i == c.selected {
			mark = ">"
		}
		v := "--"
		if cur, ok := c.value(ctl.Key); ok {
			v = fmt.Sprint(cur)
		}
		out = append(out, fmt.Sprintf("%s %s: %s [%d..%d]", mark, ctl.Label, v, ctl.Min, ctl.Max))
	}
	return append(out, "[ / ] adjust, tab select")
}

// Title returns the panel heading for a scene name.
func Title(name string) string {
	if name == "" {
		return "Controls"
	}
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
