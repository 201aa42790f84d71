package breakout

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/loop"
)

// HeadlessResult summarizes a game played without a terminal.
type HeadlessResult struct {
	State   State
	Score   int
	Lives   int
	Ticks   uint64
	Hash    uint64
	Elapsed time.Duration // Virtual time, not wall time
}

// RunHeadless plays a game on a virtual clock with the autopilot until it
// ends or maxTicks ticks have run. A zero maxTicks means no limit.
func RunHeadless(cfg config.GameConfig, maxTicks uint64, logger *log.Logger) (HeadlessResult, error) {
	q := loop.NewQueue()
	opts := []Option{}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	s, err := NewSession(cfg, q, opts...)
	if err != nil {
		return HeadlessResult{}, fmt.Errorf("cannot start game: %w", err)
	}

	pilot := Autopilot{Deadband: cfg.Paddle.Step / 2}
	step := cfg.Timing.TickInterval
	for !s.State().Terminal() {
		if maxTicks > 0 && s.Ticks() >= maxTicks {
			break
		}
		s.Handle(pilot.Next(s.Snapshot()))
		q.Advance(step)
	}

	snap := s.Snapshot()
	return HeadlessResult{
		State:   s.State(),
		Score:   s.Score(),
		Lives:   s.Lives(),
		Ticks:   s.Ticks(),
		Hash:    snap.Hash(),
		Elapsed: q.Now(),
	}, nil
}
