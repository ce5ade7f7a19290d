package catcher

import (
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

func TestIntentDirection(t *testing.T) {
	tests := []struct {
		name    string
		press   []core.Action
		release []core.Action
		want    int
	}{
		{"nothing held", nil, nil, 0},
		{"left", []core.Action{core.ActionLeft}, nil, -1},
		{"right", []core.Action{core.ActionRight}, nil, 1},
		{"both cancel", []core.Action{core.ActionLeft, core.ActionRight}, nil, 0},
		{"left released", []core.Action{core.ActionLeft}, []core.Action{core.ActionLeft}, 0},
		{"both then left released", []core.Action{core.ActionLeft, core.ActionRight}, []core.Action{core.ActionLeft}, 1},
		{"other actions ignored", []core.Action{core.ActionStart, core.ActionPause}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Intent
			for _, a := range tt.press {
				i.Press(a)
			}
			for _, a := range tt.release {
				i.Release(a)
			}
			if got := i.Direction(); got != tt.want {
				t.Errorf("Direction() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntentApply(t *testing.T) {
	var i Intent

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	i.Apply(in)
	if i.Direction() != 1 {
		t.Fatalf("Direction() = %d after right press, want 1", i.Direction())
	}

	// A frame without events keeps the key held
	i.Apply(core.NewInputFrame())
	if i.Direction() != 1 {
		t.Errorf("held key should persist across empty frames")
	}

	// Press and release in the same frame ends released
	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Release(core.ActionLeft)
	in.Release(core.ActionRight)
	i.Apply(in)
	if i.Direction() != 0 {
		t.Errorf("Direction() = %d, want 0", i.Direction())
	}
}
