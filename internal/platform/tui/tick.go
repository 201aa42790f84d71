// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and score saving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricks/internal/loop"
)

// TimerMsg is sent when a task scheduled through a TeaScheduler is due.
type TimerMsg struct {
	ID uint64
}

// FrameMsg drives the indicator animation.
type FrameMsg time.Time

// frameInterval is the redraw rate of the indicator animation.
const frameInterval = time.Second / 30

// frameCmd returns a command that sends one FrameMsg after frameInterval.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// TeaScheduler implements loop.Scheduler on top of Bubble Tea timers.
// After only records the task and queues a tea.Tick command; the task runs
// inside Update when its TimerMsg arrives, so session callbacks never
// overlap with input handling.
type TeaScheduler struct {
	next    uint64
	tasks   map[uint64]func()
	pending []tea.Cmd
}

var _ loop.Scheduler = (*TeaScheduler)(nil)

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{tasks: make(map[uint64]func())}
}

// After implements loop.Scheduler.
func (s *TeaScheduler) After(d time.Duration, task func()) {
	s.next++
	id := s.next
	s.tasks[id] = task
	s.pending = append(s.pending, tea.Tick(max(d, 0), func(time.Time) tea.Msg {
		return TimerMsg{ID: id}
	}))
}

// Fire runs the task for a timer message. Unknown ids are ignored.
func (s *TeaScheduler) Fire(id uint64) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	task()
	return true
}

// Drain returns the commands queued since the last call as one batch.
func (s *TeaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of tasks that have not fired yet.
func (s *TeaScheduler) Pending() int {
	return len(s.tasks)
}
