// Package scenes links every scripted scene into the registry and fixes the
// order they are presented in.
package scenes

import (
	_ "montyhall/internal/scenes/classic"
	_ "montyhall/internal/scenes/doorsgrid"
	_ "montyhall/internal/scenes/generalized"
	_ "montyhall/internal/scenes/generalizedn"
	_ "montyhall/internal/scenes/montyhall"
	_ "montyhall/internal/scenes/wincurve"
)

// Order is the running order of the explainer.
var Order = []string{
	"monty-hall",
	"doors-grid",
	"classic",
	"generalized-n",
	"generalized",
	"win-curve",
}
