// Package input defines the pointer events front-ends feed into the editor.
package input

import (
	"fmt"
	"strings"
)

// Kind is the type of pointer event
type Kind int

const (
	Press Kind = iota
	Move
	Release
	Scroll
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Button identifies a mouse button
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every bit of m is held
func (mods Modifier) Has(m Modifier) bool {
	return m != 0 && mods&m == m
}

var modifierNames = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"meta":    ModSuper,
}

// ParseModifier resolves a config name such as "ctrl" to a modifier bit
func ParseModifier(name string) (Modifier, error) {
	m, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown modifier %q", name)
	}
	return m, nil
}

// PointerEvent is a single pointer input in viewport pixel coordinates
type PointerEvent struct {
	Kind   Kind
	X, Y   float64
	Button Button
	Mods   Modifier
	Scroll float64 // Wheel delta for Scroll events, positive away from the user
}
