package client

import (
	"testing"
	"time"
)

func TestConfirmGateSingleSlot(t *testing.T) {
	gate := NewConfirmGate()

	answer, err := gate.Ask("delete everything?")
	if err != nil {
		t.Fatalf("first Ask: %v", err)
	}
	if !gate.Pending() {
		t.Fatal("gate should be pending after Ask")
	}

	// A second question while one is pending must fail, not stack.
	if _, err := gate.Ask("another question"); err != ErrConfirmPending {
		t.Fatalf("second Ask err = %v, want ErrConfirmPending", err)
	}
	if got := gate.Message(); got != "delete everything?" {
		t.Errorf("pending message = %q", got)
	}

	gate.Resolve(true)
	select {
	case ok := <-answer:
		if !ok {
			t.Error("answer = false, want true")
		}
	case <-time.After(time.Second):
		t.Fatal("answer never arrived")
	}

	if gate.Pending() {
		t.Error("gate should be clear after Resolve")
	}

	// The slot is reusable once resolved.
	if _, err := gate.Ask("again?"); err != nil {
		t.Fatalf("Ask after Resolve: %v", err)
	}
}

func TestConfirmGateResolveWithoutQuestion(t *testing.T) {
	gate := NewConfirmGate()
	gate.Resolve(true) // must not panic or block
	if gate.Pending() {
		t.Error("gate should stay clear")
	}
}

func TestNoticeExpiry(t *testing.T) {
	n := NewNotice("saved", NoticeSuccess)
	if n.Expired(n.ShownAt.Add(time.Second)) {
		t.Error("notice expired too early")
	}
	if !n.Expired(n.ShownAt.Add(NoticeDuration + time.Millisecond)) {
		t.Error("notice should expire after its duration")
	}
}
