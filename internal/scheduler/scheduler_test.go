package scheduler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"KappaTrend/internal/feed"
	"KappaTrend/internal/notifier"
	"KappaTrend/internal/oscillator"
	"KappaTrend/internal/recorder"
)

func TestScheduler_ReplaysToExhaustion(t *testing.T) {
	values := []float64{104.2, 106.8, 105.1, 108.9, 107.3}
	src := feed.NewReplay("TEST", values)

	var buf bytes.Buffer
	s := NewScheduler(context.Background(), src,
		oscillator.NewEngine(),
		notifier.NewConsoleNotifierTo(&buf),
		recorder.NewNoopRecorder())

	for i := 0; i < len(values); i++ {
		s.RunStepNow()
		select {
		case <-s.Done():
			t.Fatalf("done closed early at step %d", i+1)
		default:
		}
	}
	if got := s.Engine.State().Epoch; got != len(values) {
		t.Errorf("expected %d updates, got %d", len(values), got)
	}

	// One more step hits exhaustion and closes Done without updating.
	s.RunStepNow()
	select {
	case <-s.Done():
	default:
		t.Error("expected Done closed after exhaustion")
	}
	if got := s.Engine.State().Epoch; got != len(values) {
		t.Errorf("exhausted step changed epoch to %d", got)
	}

	out := buf.String()
	if !strings.Contains(out, "TEST step 1") {
		t.Errorf("missing step report in output:\n%s", out)
	}
}

func TestScheduler_StopsAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := feed.NewReplay("TEST", []float64{1, 2, 3})

	s := NewScheduler(ctx, src,
		oscillator.NewEngine(),
		notifier.NewConsoleNotifierTo(&bytes.Buffer{}),
		recorder.NewNoopRecorder())

	s.RunStepNow()
	cancel()
	s.RunStepNow() // must be a no-op once the context is done

	if got := s.Engine.State().Epoch; got != 1 {
		t.Errorf("expected 1 update after cancel, got %d", got)
	}
}

func TestScheduler_RegisterBadCron(t *testing.T) {
	s := NewScheduler(context.Background(),
		feed.NewReplay("TEST", nil),
		oscillator.NewEngine(),
		notifier.NewConsoleNotifierTo(&bytes.Buffer{}),
		recorder.NewNoopRecorder())

	if err := s.Register("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
