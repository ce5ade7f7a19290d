package catcher

import "github.com/vovakirdan/fruit-catcher/internal/core"

// Intent turns discrete press/release events into a movement direction
// that the frame pipeline samples once per frame.
type Intent struct {
	leftHeld  bool
	rightHeld bool
}

// Press marks a direction key as held. Other actions are ignored.
func (i *Intent) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		i.leftHeld = true
	case core.ActionRight:
		i.rightHeld = true
	}
}

// Release clears a held direction key.
func (i *Intent) Release(a core.Action) {
	switch a {
	case core.ActionLeft:
		i.leftHeld = false
	case core.ActionRight:
		i.rightHeld = false
	}
}

// Apply feeds one input frame: presses first, then releases.
func (i *Intent) Apply(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			i.Press(a)
		}
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if in.WasReleased(a) {
			i.Release(a)
		}
	}
}

// Direction resolves the held keys to -1 (left), 0 (none or both) or +1 (right).
func (i *Intent) Direction() int {
	dir := 0
	if i.leftHeld {
		dir--
	}
	if i.rightHeld {
		dir++
	}
	return dir
}

// Clear releases both keys.
func (i *Intent) Clear() {
	i.leftHeld = false
	i.rightHeld = false
}
