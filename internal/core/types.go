package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"montyhall/internal/anim"
)

// ErrUnknownScene is returned when a scene name is not registered.
var ErrUnknownScene = errors.New("unknown scene")

// Scene defines the minimal contract a scripted scene must implement.
type Scene interface {
	Name() string
	Build(seed int64) (*anim.Timeline, error)
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup constructs the named scene with cfg.
func Lookup(name string, cfg map[string]string) (Scene, error) {
	factory, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return factory(cfg), nil
}
