package hook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pulsekit/jobpulse/event"
	"github.com/pulsekit/jobpulse/hook"
	"github.com/pulsekit/jobpulse/id"
)

// allHooks implements every lifecycle hook for testing.
type allHooks struct {
	name  string
	calls []string
	err   error
}

func (h *allHooks) Name() string { return h.name }

func (h *allHooks) OnJobStarted(_ context.Context, _ *event.JobEvent) error {
	h.calls = append(h.calls, "OnJobStarted")
	return h.err
}

func (h *allHooks) OnJobPerformed(_ context.Context, _ *event.JobEvent) error {
	h.calls = append(h.calls, "OnJobPerformed")
	return h.err
}

// startedOnly implements only the JobStarted hook.
type startedOnly struct {
	calls int
}

func (h *startedOnly) Name() string { return "started-only" }

func (h *startedOnly) OnJobStarted(_ context.Context, _ *event.JobEvent) error {
	h.calls++
	return nil
}

func newTestEvent(kind event.Kind) *event.JobEvent {
	return &event.JobEvent{
		ID:         id.NewEventID(),
		Kind:       kind,
		JobName:    "SendEmailJob",
		Queue:      "default",
		Executions: 1,
		EndedAt:    time.Now().UTC(),
	}
}

func TestRegistry_EmitJobStarted(t *testing.T) {
	r := hook.NewRegistry()
	h := &allHooks{name: "all"}
	r.Register(h)

	if err := r.EmitJobStarted(context.Background(), newTestEvent(event.KindPerformStart)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.calls) != 1 || h.calls[0] != "OnJobStarted" {
		t.Errorf("calls = %v, want [OnJobStarted]", h.calls)
	}
}

func TestRegistry_EmitJobPerformed(t *testing.T) {
	r := hook.NewRegistry()
	h := &allHooks{name: "all"}
	r.Register(h)

	if err := r.EmitJobPerformed(context.Background(), newTestEvent(event.KindPerform)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.calls) != 1 || h.calls[0] != "OnJobPerformed" {
		t.Errorf("calls = %v, want [OnJobPerformed]", h.calls)
	}
}

func TestRegistry_PartialHook(t *testing.T) {
	r := hook.NewRegistry()
	h := &startedOnly{}
	r.Register(h)

	if err := r.EmitJobPerformed(context.Background(), newTestEvent(event.KindPerform)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.calls != 0 {
		t.Errorf("startedOnly received %d perform calls, want 0", h.calls)
	}

	if err := r.EmitJobStarted(context.Background(), newTestEvent(event.KindPerformStart)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.calls != 1 {
		t.Errorf("startedOnly received %d start calls, want 1", h.calls)
	}
}

func TestRegistry_ErrorStopsChain(t *testing.T) {
	r := hook.NewRegistry()
	boom := errors.New("boom")
	first := &allHooks{name: "first", err: boom}
	second := &allHooks{name: "second"}
	r.Register(first)
	r.Register(second)

	err := r.EmitJobStarted(context.Background(), newTestEvent(event.KindPerformStart))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if len(second.calls) != 0 {
		t.Errorf("second hook should not run after first errors, got %v", second.calls)
	}
}

func TestRegistry_RegistrationOrder(t *testing.T) {
	r := hook.NewRegistry()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		n := name
		r.Register(&orderedHook{name: n, order: &order})
	}

	if err := r.EmitJobPerformed(context.Background(), newTestEvent(event.KindPerform)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

type orderedHook struct {
	name  string
	order *[]string
}

func (h *orderedHook) Name() string { return h.name }

func (h *orderedHook) OnJobPerformed(_ context.Context, _ *event.JobEvent) error {
	*h.order = append(*h.order, h.name)
	return nil
}

func TestRegistry_Hooks(t *testing.T) {
	r := hook.NewRegistry()
	if len(r.Hooks()) != 0 {
		t.Errorf("new registry should have no hooks")
	}
	r.Register(&allHooks{name: "all"})
	if len(r.Hooks()) != 1 {
		t.Errorf("expected 1 hook, got %d", len(r.Hooks()))
	}
}
