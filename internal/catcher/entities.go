package catcher

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Kind is the visual variant of a fruit.
type Kind int

const (
	KindApple Kind = iota
	KindBanana
	KindOrange
	KindGrape
	KindStrawberry
	KindPineapple
)

var kindNames = map[Kind]string{
	KindApple:      "apple",
	KindBanana:     "banana",
	KindOrange:     "orange",
	KindGrape:      "grape",
	KindStrawberry: "strawberry",
	KindPineapple:  "pineapple",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKinds maps config names to kinds.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		found := false
		for k, n := range kindNames {
			if n == name {
				kinds = append(kinds, k)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("catcher: unknown fruit kind %q", name)
		}
	}
	return kinds, nil
}

// Fruit is a falling object.
type Fruit struct {
	ID        uint64
	X, Y      float64 // Top-left corner in arena units
	Size      float64
	FallSpeed float64 // Arena units per second
	Kind      Kind
}

// Rect returns the fruit's bounding box.
func (f Fruit) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.Size, f.Size)
}

// Paddle is the player's basket. Y is fixed for the whole session.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the basket's hit-box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// SpawnParams describes the fruit the next spawn draws from.
type SpawnParams struct {
	Size     float64
	MinSpeed float64
	MaxSpeed float64
	Kinds    []Kind
}

// Store owns every live fruit and the paddle.
type Store struct {
	arenaW float64
	arenaH float64
	fruits []Fruit
	paddle Paddle
	nextID uint64
}

// NewStore creates an empty store with the paddle centered horizontally.
func NewStore(arenaW, arenaH float64, paddle Paddle) *Store {
	s := &Store{
		arenaW: arenaW,
		arenaH: arenaH,
		fruits: make([]Fruit, 0, 16),
		paddle: paddle,
	}
	s.CenterPaddle()
	return s
}

// Spawn adds one fruit fully above the arena at a random column.
func (s *Store) Spawn(rng *rand.Rand, p SpawnParams) Fruit {
	s.nextID++

	f := Fruit{
		ID:        s.nextID,
		X:         rng.Float64() * max(s.arenaW-p.Size, 0),
		Y:         -p.Size,
		Size:      p.Size,
		FallSpeed: p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed),
		Kind:      KindApple,
	}
	if len(p.Kinds) > 0 {
		f.Kind = p.Kinds[rng.Intn(len(p.Kinds))]
	}

	s.fruits = append(s.fruits, f)
	return f
}

// Add inserts a fruit as-is. The store assigns the ID.
func (s *Store) Add(f Fruit) Fruit {
	s.nextID++
	f.ID = s.nextID
	s.fruits = append(s.fruits, f)
	return f
}

// Advance moves every fruit down by FallSpeed*dt. Nothing is removed here.
func (s *Store) Advance(dt float64) {
	for i := range s.fruits {
		s.fruits[i].Y += s.fruits[i].FallSpeed * dt
	}
}

// SetPaddleX clamps x to [0, arenaW - width] and moves the paddle there.
func (s *Store) SetPaddleX(x float64) {
	s.paddle.X = core.ClampF(x, 0, max(s.arenaW-s.paddle.Width, 0))
}

// CenterPaddle puts the paddle in the middle of the arena.
func (s *Store) CenterPaddle() {
	s.SetPaddleX((s.arenaW - s.paddle.Width) / 2)
}

// Paddle returns the current paddle.
func (s *Store) Paddle() Paddle {
	return s.paddle
}

// Fruits returns the live fruits. The slice must not be modified.
func (s *Store) Fruits() []Fruit {
	return s.fruits
}

// RemoveIf drops every fruit matching pred and returns how many were dropped.
func (s *Store) RemoveIf(pred func(Fruit) bool) int {
	kept := s.fruits[:0]
	removed := 0
	for _, f := range s.fruits {
		if pred(f) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	clear(s.fruits[len(kept):])
	s.fruits = kept
	return removed
}

// Clear removes every fruit.
func (s *Store) Clear() {
	s.fruits = s.fruits[:0]
}
