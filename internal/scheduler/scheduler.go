package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"KappaTrend/internal/feed"
	"KappaTrend/internal/notifier"
	"KappaTrend/internal/oscillator"
	"KappaTrend/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler paces the replay: each cron tick pulls the next series
// snapshot from the source, runs one engine update, reports it, and
// records it. Done is closed once the source is exhausted.
type Scheduler struct {
	Cron     *cron.Cron
	Source   feed.Source
	Engine   *oscillator.Engine
	Notifier notifier.Notifier
	Recorder recorder.Recorder
	Ctx      context.Context

	done     chan struct{}
	doneOnce sync.Once
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, src feed.Source, eng *oscillator.Engine, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   src,
		Engine:   eng,
		Notifier: n,
		Recorder: rec,
		Ctx:      ctx,
		done:     make(chan struct{}),
	}
}

// Register registers the replay step task.
func (s *Scheduler) Register(stepCron string) error {
	if _, err := s.Cron.AddFunc(stepCron, s.stepTask); err != nil {
		return fmt.Errorf("register step task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// Done is closed when the source has been fully replayed.
func (s *Scheduler) Done() <-chan struct{} { return s.done }

// RunStepNow executes one replay step immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunStepNow() {
	s.stepTask()
}

func (s *Scheduler) stepTask() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}

	series, ok := s.Source.Next()
	if !ok {
		s.doneOnce.Do(func() {
			log.Printf("[INFO] source %s exhausted after %d steps", s.Source.Name(), s.Engine.State().Epoch)
			close(s.done)
		})
		return
	}

	state := s.Engine.Update(series)

	report := notifier.FormatStepReport(s.Source.Name(), state, len(series),
		s.Engine.InOverbought(), s.Engine.InOversold())
	s.trySend(report)

	if err := s.Recorder.RecordStep(&recorder.StepSnapshot{
		State:     state,
		SeriesLen: len(series),
		Source:    s.Source.Name(),
	}); err != nil {
		log.Printf("[ERROR] record step: %v", err)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
