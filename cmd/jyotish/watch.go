package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"Jyotish/internal/chart"
	"Jyotish/internal/collector"
	"Jyotish/internal/config"
	"Jyotish/internal/notifier"
	"Jyotish/internal/recorder"
	"Jyotish/internal/scheduler"
	"Jyotish/internal/tracker"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the Telegram bot that announces dasha transitions",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Bool("run-now", os.Getenv("RUN_ON_START") == "true", "run the dasha watch once at startup (or RUN_ON_START env)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	log.Println("[INFO] Jyotish watch starting...")

	cfg, cfgPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	// Init position source
	var source collector.PositionSource
	if cfg.Ephemeris.BaseURL != "" {
		source = collector.NewHTTPSource(cfg.Ephemeris.BaseURL, cfg.Ephemeris.APIKey, cfg.Proxy,
			time.Duration(cfg.Ephemeris.TimeoutSeconds)*time.Second, cfg.Ephemeris.MaxRetries)
		log.Printf("[INFO] position source: %s", source.Name())
	} else {
		log.Println("[INFO] position source: internal calculator")
	}
	col := collector.NewCollector(source, chart.WithDashaDepth(cfg.Engine.DashaDepth))

	tm, err := tracker.NewManager(cfg.Tracker.StateFile)
	if err != nil {
		return fmt.Errorf("init tracker: %w", err)
	}

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, cfg, col, tm, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.WatchCron, cfg.Schedule.DigestCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// Reload profiles when the config file changes
	if w, err := config.NewWatcher(cfgPath); err != nil {
		log.Printf("[WARN] config watcher unavailable: %v", err)
	} else if err := w.Start(); err != nil {
		log.Printf("[WARN] config watcher unavailable: %v", err)
	} else {
		defer w.Stop()
		go sched.WatchConfig(w.Changes)
	}

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if runNow, _ := cmd.Flags().GetBool("run-now"); runNow {
		log.Println("[INFO] --run-now set, executing dasha watch now")
		go sched.RunWatchNow()
	}

	log.Printf("[INFO] Jyotish is watching %d profile(s). Press Ctrl+C to stop.", len(cfg.Profiles))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] Jyotish stopped")
	return nil
}
