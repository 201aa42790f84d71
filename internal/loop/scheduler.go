// Package loop provides the delayed-task scheduler that drives the game.
//
// Nothing here blocks. A task runs once, on the host's single logical thread,
// after its delay has elapsed; re-arming is done by scheduling again.
package loop

import (
	"container/heap"
	"time"
)

// Scheduler runs tasks after a delay.
// Implementations must never run two tasks concurrently.
type Scheduler interface {
	After(d time.Duration, task func())
}

// Queue is a virtual-clock Scheduler. Time only moves when Advance is called,
// which makes it suitable for tests and headless simulation.
// Tasks due at the same instant run in the order they were scheduled.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

// NewQueue creates an empty queue at virtual time zero.
func NewQueue() *Queue {
	return &Queue{}
}

// After schedules task to run d after the current virtual time.
// Negative delays are treated as zero.
func (q *Queue) After(d time.Duration, task func()) {
	if d < 0 {
		d = 0
	}
	q.seq++
	heap.Push(&q.tasks, entry{due: q.now + d, seq: q.seq, task: task})
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Pending returns the number of tasks waiting to run.
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// NextDue returns the due time of the earliest task.
func (q *Queue) NextDue() (time.Duration, bool) {
	if len(q.tasks) == 0 {
		return 0, false
	}
	return q.tasks[0].due, true
}

// Advance moves the clock forward by d, running every task that becomes due.
// Tasks scheduled while advancing run too if they fall inside the window.
// It returns the number of tasks run.
func (q *Queue) Advance(d time.Duration) int {
	end := q.now + d
	ran := 0
	for len(q.tasks) > 0 && q.tasks[0].due <= end {
		e := heap.Pop(&q.tasks).(entry)
		q.now = e.due
		e.task()
		ran++
	}
	q.now = end
	return ran
}

// Step jumps to the earliest task and runs it.
// It reports false when the queue is empty.
func (q *Queue) Step() bool {
	if len(q.tasks) == 0 {
		return false
	}
	e := heap.Pop(&q.tasks).(entry)
	q.now = e.due
	e.task()
	return true
}

// RunUntilIdle steps until the queue is empty or limit tasks have run.
// A limit of zero or less means no limit. It returns the number of tasks run.
func (q *Queue) RunUntilIdle(limit int) int {
	ran := 0
	for limit <= 0 || ran < limit {
		if !q.Step() {
			break
		}
		ran++
	}
	return ran
}

type entry struct {
	due  time.Duration
	seq  uint64
	task func()
}

type taskHeap []entry

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}
