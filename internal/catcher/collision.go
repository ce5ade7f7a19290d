package catcher

import "github.com/vovakirdan/fruit-catcher/internal/core"

// Outcome is what happened to a fruit in a frame.
type Outcome int

const (
	OutcomeNone  Outcome = iota // still falling
	OutcomeCatch                // overlapped the basket
	OutcomeMiss                 // crossed the floor uncaught
)

// String returns a readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCatch:
		return "catch"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Resolution ties an outcome to the fruit it belongs to.
type Resolution struct {
	ID      uint64
	Kind    Kind
	Outcome Outcome
}

// Classify decides a single fruit's outcome. A catch wins over a miss when
// both hold in the same frame.
func Classify(paddle core.Rect, f Fruit, floor float64) Outcome {
	if f.Rect().Intersects(paddle) {
		return OutcomeCatch
	}
	if f.Y+f.Size > floor {
		return OutcomeMiss
	}
	return OutcomeNone
}

// Resolve classifies every fruit against the paddle and the floor and
// returns the catches and misses in store order. It has no side effects.
func Resolve(paddle core.Rect, fruits []Fruit, floor float64) []Resolution {
	var out []Resolution
	for _, f := range fruits {
		if o := Classify(paddle, f, floor); o != OutcomeNone {
			out = append(out, Resolution{ID: f.ID, Kind: f.Kind, Outcome: o})
		}
	}
	return out
}
