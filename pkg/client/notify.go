package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// NoticeDuration is how long a transient notice stays visible.
const NoticeDuration = 4 * time.Second

// Notice kinds.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a transient operator message.
type Notice struct {
	Message  string
	Kind     string
	ShownAt  time.Time
	Duration time.Duration
}

// NewNotice builds a notice with the default duration.
func NewNotice(message, kind string) Notice {
	return Notice{
		Message:  message,
		Kind:     kind,
		ShownAt:  time.Now(),
		Duration: NoticeDuration,
	}
}

// Expired reports whether the notice should be hidden.
func (n Notice) Expired(now time.Time) bool {
	return now.After(n.ShownAt.Add(n.Duration))
}

// ErrConfirmPending is returned when a confirmation is requested while another
// one is still unanswered.
var ErrConfirmPending = errors.New("a confirmation is already pending")

// Confirmer answers yes/no questions before destructive actions run.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// ConfirmGate is a single-slot pending confirmation. Ask parks the question
// until Resolve is called; a second Ask while one is pending fails instead of
// stacking dialogs.
type ConfirmGate struct {
	mu      sync.Mutex
	pending chan bool
	message string
}

func NewConfirmGate() *ConfirmGate {
	return &ConfirmGate{}
}

// Ask registers a question and returns the channel the answer arrives on.
func (g *ConfirmGate) Ask(message string) (<-chan bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		return nil, ErrConfirmPending
	}
	g.pending = make(chan bool, 1)
	g.message = message
	return g.pending, nil
}

// Message returns the question currently awaiting an answer.
func (g *ConfirmGate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}

// Pending reports whether a question is awaiting an answer.
func (g *ConfirmGate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Resolve answers the pending question and clears the slot. Resolving with no
// question pending is a no-op.
func (g *ConfirmGate) Resolve(answer bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil {
		return
	}
	g.pending <- answer
	g.pending = nil
	g.message = ""
}

// Confirm implements Confirmer by asking and waiting for the answer.
func (g *ConfirmGate) Confirm(ctx context.Context, message string) (bool, error) {
	answer, err := g.Ask(message)
	if err != nil {
		return false, err
	}
	select {
	case ok := <-answer:
		return ok, nil
	case <-ctx.Done():
		g.Resolve(false)
		return false, ctx.Err()
	}
}
