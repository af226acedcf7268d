package usecase

import "sync"

// Direction records which way the user last moved through the form.
// It only drives the presentation transition, never data.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// StepCount is the number of editor steps in the form: personal info,
// education, work experience, skills and languages, references.
const StepCount = 5

// StepNav tracks the current editor step in [1, total]. Next and Prev
// clamp at the boundaries instead of erroring.
type StepNav struct {
	mu        sync.Mutex
	current   int
	total     int
	direction Direction
}

func NewStepNav(total int) *StepNav {
	if total < 1 {
		total = 1
	}
	return &StepNav{current: 1, total: total, direction: DirectionForward}
}

func (n *StepNav) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *StepNav) Total() int { return n.total }

func (n *StepNav) Direction() Direction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.direction
}

// Next advances one step; at the last step it is a no-op.
func (n *StepNav) Next() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current < n.total {
		n.current++
		n.direction = DirectionForward
	}
	return n.current
}

// Prev steps back one step; at the first step it is a no-op.
func (n *StepNav) Prev() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current > 1 {
		n.current--
		n.direction = DirectionBackward
	}
	return n.current
}
