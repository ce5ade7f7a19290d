package catcher

import "math"

// Snapshot is a flat copy of the engine state for determinism checks.
type Snapshot struct {
	Tick          uint64
	Status        Status
	Score         int
	Lives         int
	TimeRemaining float64
	Elapsed       float64
	PaddleX       float64

	// Each fruit is 5 values: ID, X, Y, FallSpeed, Kind
	FruitCount int
	FruitData  []float64
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	fruits := e.store.Fruits()
	data := make([]float64, 0, len(fruits)*5)
	for _, f := range fruits {
		data = append(data, float64(f.ID), f.X, f.Y, f.FallSpeed, float64(f.Kind))
	}

	return Snapshot{
		Tick:          e.tick,
		Status:        e.session.Status(),
		Score:         e.session.Score(),
		Lives:         e.session.Lives(),
		TimeRemaining: e.session.TimeRemaining(),
		Elapsed:       e.session.Elapsed(),
		PaddleX:       e.store.Paddle().X,
		FruitCount:    len(fruits),
		FruitData:     data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FruitCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TimeRemaining)
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, v := range snap.FruitData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
