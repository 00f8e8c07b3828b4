package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"KappaTrend/internal/config"
	"KappaTrend/internal/feed"
	"KappaTrend/internal/notifier"
	"KappaTrend/internal/oscillator"
	"KappaTrend/internal/recorder"
	"KappaTrend/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] KappaTrend starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init series source
	values := feed.Vexel7Extended()
	if cfg.Series.CSVPath != "" {
		values, err = feed.LoadSeriesCSV(cfg.Series.CSVPath)
		if err != nil {
			log.Fatalf("[FATAL] load series: %v", err)
		}
	}
	src := feed.NewReplay(cfg.Series.Name, values)
	log.Printf("[INFO] series source: %s (%d points)", src.Name(), len(values))

	// Init engine with the fixed default tuning
	eng := oscillator.NewEngine()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Console notifier
	cn := notifier.NewConsoleNotifier()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, src, eng, cn, rec)
	if err := sched.Register(cfg.Schedule.StepCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.RunOnStart {
		log.Println("[INFO] run_on_start enabled, executing first step now")
		sched.RunStepNow()
	}

	log.Println("[INFO] KappaTrend is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or end of replay
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case <-sched.Done():
		log.Println("[INFO] replay finished")
	}
	cancel()

	// Final summary from the recorder
	steps, err := rec.RecentSteps(len(values))
	if err != nil {
		log.Printf("[ERROR] read recorded steps: %v", err)
	} else if len(steps) > 0 {
		if err := cn.Send(notifier.FormatStepTable(steps)); err != nil {
			log.Printf("[ERROR] print summary: %v", err)
		}
	}

	log.Println("[INFO] KappaTrend stopped")
}
