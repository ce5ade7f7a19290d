package catcher

import (
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
)

// Status is the run state of a session.
type Status int

const (
	StatusIdle    Status = iota // before the first start or after a reset
	StatusRunning               // accepting frames and input
	StatusEnded                 // terminal until start or reset
)

// String returns a readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session tracks score, lives or remaining time, and the run status.
//
// Status is Ended exactly when lives (lives mode) or remaining time (timed
// mode) reached zero. Once Ended, score, lives and time are frozen until
// Start or Reset. Every registered scheduler is stopped before the status
// changes away from Running.
type Session struct {
	timed      bool
	startLives int
	duration   float64

	status        Status
	score         int
	lives         int
	timeRemaining float64
	elapsed       float64
	best          int
	newBest       bool

	schedulers []Scheduler
}

// NewSession creates an idle session for the given gameplay rules.
func NewSession(rules config.GameplayConfig, schedulers ...Scheduler) *Session {
	s := &Session{
		timed:      rules.Mode == config.ModeTimed,
		startLives: rules.Lives,
		duration:   rules.Duration,
		schedulers: schedulers,
	}
	s.Reset()
	return s
}

// Start begins a new run from Idle or Ended. Score, lives and time are reset
// and every scheduler is armed at now. Returns false while already Running.
func (s *Session) Start(now time.Time) bool {
	if s.status == StatusRunning {
		return false
	}
	s.restore()
	for _, sch := range s.schedulers {
		sch.Arm(now)
	}
	s.status = StatusRunning
	return true
}

// Reset stops every scheduler and returns to Idle. Calling it repeatedly
// yields the same state.
func (s *Session) Reset() {
	s.stopAll()
	s.restore()
	s.status = StatusIdle
}

func (s *Session) restore() {
	s.score = 0
	s.lives = s.startLives
	s.timeRemaining = s.duration
	s.elapsed = 0
	s.newBest = false
}

func (s *Session) stopAll() {
	for _, sch := range s.schedulers {
		sch.Stop()
	}
}

// finish stops the schedulers, freezes the run and settles the best score.
func (s *Session) finish() {
	s.stopAll()
	s.status = StatusEnded
	if s.score > s.best {
		s.best = s.score
		s.newBest = true
	}
}

// AddScore adds points while Running. Returns whether it applied.
func (s *Session) AddScore(points int) bool {
	if s.status != StatusRunning {
		return false
	}
	s.score += points
	return true
}

// LoseLife costs one life in lives mode and ends the run at zero.
// Returns true if this call ended the run.
func (s *Session) LoseLife() bool {
	if s.status != StatusRunning || s.timed {
		return false
	}
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.finish()
		return true
	}
	return false
}

// Countdown removes d seconds in timed mode and ends the run at zero.
// Returns true if this call ended the run.
func (s *Session) Countdown(d float64) bool {
	if s.status != StatusRunning || !s.timed {
		return false
	}
	s.timeRemaining -= d
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.finish()
		return true
	}
	return false
}

// Elapse accumulates run time used for difficulty progression.
func (s *Session) Elapse(dt float64) {
	if s.status == StatusRunning {
		s.elapsed += dt
	}
}

// SetBest seeds the best-known score, e.g. from persistent storage.
func (s *Session) SetBest(best int) {
	if best > s.best {
		s.best = best
	}
}

func (s *Session) Status() Status         { return s.status }
func (s *Session) Score() int             { return s.score }
func (s *Session) Lives() int             { return s.lives }
func (s *Session) TimeRemaining() float64 { return s.timeRemaining }
func (s *Session) Elapsed() float64       { return s.elapsed }
func (s *Session) Best() int              { return s.best }
func (s *Session) NewBest() bool          { return s.newBest }
func (s *Session) Timed() bool            { return s.timed }
