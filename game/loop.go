package game

import (
	"log"
	"time"
)

// Loop steps a match on a wall-clock ticker, for runs without the ebiten
// game loop driving time.
type Loop struct {
	match    *Match
	interval time.Duration
	onTick   func(*Match) bool
	stopChan chan struct{}
}

// NewLoop builds a loop that calls onTick after every step. Returning false
// from onTick ends the run.
func NewLoop(match *Match, interval time.Duration, onTick func(*Match) bool) *Loop {
	return &Loop{
		match:    match,
		interval: interval,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until onTick asks to stop or Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	log.Printf("Match loop started, one step every %v", l.interval)

	for {
		select {
		case <-l.stopChan:
			log.Println("Match loop stopped")
			return
		case <-ticker.C:
			l.match.Step()
			if l.onTick != nil && !l.onTick(l.match) {
				return
			}
		}
	}
}

// Stop ends Run. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}
