package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Terminals report key presses and auto-repeats but never key releases.
// A held direction is considered released once no repeat has arrived
// within the window below.
const (
	// DefaultFirstRepeat covers the pause before the terminal starts repeating.
	DefaultFirstRepeat = 300 * time.Millisecond
	// DefaultReleaseAfter is the window between two auto-repeats.
	DefaultReleaseAfter = 120 * time.Millisecond
)

type heldKey struct {
	last     time.Time
	repeated bool
}

// KeyMapper translates Bubble Tea key messages to game actions.
// It also synthesizes releases for held directions.
type KeyMapper struct {
	firstRepeat  time.Duration
	releaseAfter time.Duration
	held         map[core.Action]heldKey
}

// NewKeyMapper creates a new key mapper with default bindings and latch timing.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithLatch(DefaultFirstRepeat, DefaultReleaseAfter)
}

// NewKeyMapperWithLatch creates a key mapper with custom release timing.
// Non-positive values fall back to the defaults.
func NewKeyMapperWithLatch(firstRepeat, releaseAfter time.Duration) *KeyMapper {
	if firstRepeat <= 0 {
		firstRepeat = DefaultFirstRepeat
	}
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &KeyMapper{
		firstRepeat:  firstRepeat,
		releaseAfter: releaseAfter,
		held:         make(map[core.Action]heldKey),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
		return isQuit
	case core.ActionLeft, core.ActionRight:
		km.hold(action, frame, now)
	}
	frame.Set(action)
	return isQuit
}

func (km *KeyMapper) hold(action core.Action, frame *core.InputFrame, now time.Time) {
	// A terminal repeats only the last key pressed, so the other
	// direction cannot still be down.
	opposite := core.ActionLeft
	if action == core.ActionLeft {
		opposite = core.ActionRight
	}
	if _, ok := km.held[opposite]; ok {
		delete(km.held, opposite)
		frame.Release(opposite)
	}

	_, ok := km.held[action]
	km.held[action] = heldKey{last: now, repeated: ok}
}

// ExpireHeld releases every held direction whose repeat window has
// elapsed by now.
func (km *KeyMapper) ExpireHeld(now time.Time, frame *core.InputFrame) {
	for action, h := range km.held {
		window := km.firstRepeat
		if h.repeated {
			window = km.releaseAfter
		}
		if now.Sub(h.last) >= window {
			delete(km.held, action)
			frame.Release(action)
		}
	}
}

// ReleaseAll releases every held direction.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	for action := range km.held {
		delete(km.held, action)
		frame.Release(action)
	}
}

// Held reports whether action is currently latched as held.
func (km *KeyMapper) Held(action core.Action) bool {
	_, ok := km.held[action]
	return ok
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
