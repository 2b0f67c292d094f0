package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"Jyotish/internal/chart"
	"Jyotish/internal/collector"
	"Jyotish/internal/config"
	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
	"Jyotish/internal/notifier"
	"Jyotish/internal/recorder"
	"Jyotish/internal/tracker"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const (
	sendRetries = 3
	// watchLevel is the deepest period the watcher announces.
	watchLevel  = int(model.Antardasha)
	parallelism = 4
)

// Sender delivers a message to one chat.
type Sender interface {
	SendWithRetry(ctx context.Context, chatID, text string, maxRetries int) error
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Tracker   *tracker.Manager
	Notifier  Sender
	Recorder  recorder.Recorder
	Ctx       context.Context

	mu  sync.RWMutex
	cfg *config.Config
	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, cfg *config.Config, col *collector.Collector, tm *tracker.Manager, sender Sender, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Tracker:   tm,
		Notifier:  sender,
		Recorder:  rec,
		Ctx:       ctx,
		cfg:       cfg,
		now:       time.Now,
	}
}

// RegisterAll registers the dasha watch and the yoga digest.
func (s *Scheduler) RegisterAll(watchCron, digestCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunWatchNow executes the watch task immediately (for --run-now).
func (s *Scheduler) RunWatchNow() {
	s.watchTask()
}

func (s *Scheduler) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// ReloadProfiles swaps in a new configuration and forgets profiles that were removed.
// Cron expressions are only read at startup.
func (s *Scheduler) ReloadProfiles(cfg *config.Config) {
	s.mu.Lock()
	old := s.cfg
	s.cfg = cfg
	s.mu.Unlock()

	if old != nil && old.Schedule != cfg.Schedule {
		log.Println("[WARN] schedule changed in config, restart to apply it")
	}
	names := make([]string, len(cfg.Profiles))
	for i, p := range cfg.Profiles {
		names[i] = p.Name
	}
	removed := s.Tracker.Prune(names)
	log.Printf("[INFO] profiles reloaded: %d active, %d pruned", len(names), removed)
}

// WatchConfig applies every configuration received on changes until ctx is done.
func (s *Scheduler) WatchConfig(changes <-chan *config.Config) {
	for {
		select {
		case <-s.Ctx.Done():
			return
		case cfg, ok := <-changes:
			if !ok {
				return
			}
			s.ReloadProfiles(cfg)
		}
	}
}

func (s *Scheduler) watchTask() {
	log.Println("[INFO] running dasha watch")
	cfg := s.config()
	now := s.now()

	g, ctx := errgroup.WithContext(s.Ctx)
	g.SetLimit(parallelism)
	for _, p := range cfg.Profiles {
		g.Go(func() error {
			return s.watchProfile(ctx, cfg, p, now)
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] dasha watch: %v", err)
	}
}

// watchProfile announces the profile's active period if it changed since the last
// announcement. Only a cancelled context is returned as an error.
func (s *Scheduler) watchProfile(ctx context.Context, cfg *config.Config, p config.Profile, now time.Time) error {
	in, err := p.BirthInput()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return nil
	}
	c, err := s.Collector.Chart(ctx, in)
	if err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}

	chain := dasha.Truncate(dasha.ActiveAt(c.Dasha, now), watchLevel)
	s.recordChart(p.Name, c, chain)
	if len(chain) == 0 || !s.Tracker.Changed(p.Name, chain) {
		return nil
	}

	chatID := cfg.ChatFor(p)
	err = s.Notifier.SendWithRetry(ctx, chatID, notifier.FormatTransition(p.Name, chain, now), sendRetries)
	s.recordNotification(p.Name, chatID, "TRANSITION", err)
	if err != nil {
		log.Printf("[ERROR] announce %s for %s: %v", dasha.Lineage(chain), p.Name, err)
		return nil
	}

	deepest := chain[len(chain)-1]
	if err := s.Recorder.RecordTransition(&recorder.TransitionEvent{
		Profile: p.Name,
		Lineage: dasha.Lineage(chain),
		Level:   deepest.Level.String(),
		Planet:  deepest.Planet.String(),
		Start:   deepest.Start,
		End:     deepest.End,
	}); err != nil {
		log.Printf("[ERROR] record transition: %v", err)
	}
	s.Tracker.Mark(p.Name, chain, now)
	log.Printf("[INFO] announced %s for %s", dasha.Lineage(chain), p.Name)
	return nil
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running yoga digest")
	cfg := s.config()
	for _, p := range cfg.Profiles {
		c, err := s.profileChart(p)
		if err != nil {
			log.Printf("[ERROR] digest: %v", err)
			continue
		}
		chatID := cfg.ChatFor(p)
		err = s.Notifier.SendWithRetry(s.Ctx, chatID, notifier.FormatYogas(p.Name, chart.ClassifyYogas(c)), sendRetries)
		s.recordNotification(p.Name, chatID, "DIGEST", err)
		if err != nil {
			log.Printf("[ERROR] send digest for %s: %v", p.Name, err)
		}
	}
}

func (s *Scheduler) profileChart(p config.Profile) (*model.Chart, error) {
	in, err := p.BirthInput()
	if err != nil {
		return nil, err
	}
	c, err := s.Collector.Chart(s.Ctx, in)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return c, nil
}

func (s *Scheduler) recordChart(profile string, c *model.Chart, chain []model.DashaPeriod) {
	evt := &recorder.ChartEvent{
		Profile:       profile,
		Source:        c.Source,
		AscendantSign: c.Ascendant.Sign.String(),
		Lineage:       dasha.Lineage(chain),
		YogaCount:     len(chart.ClassifyYogas(c)),
	}
	if moon, ok := c.Position(model.Moon); ok {
		evt.MoonNakshatra = moon.Nakshatra.String()
	}
	if err := s.Recorder.RecordChart(evt); err != nil {
		log.Printf("[ERROR] record chart: %v", err)
	}
}

func (s *Scheduler) recordNotification(profile, chatID, kind string, sendErr error) {
	evt := &recorder.NotificationEvent{
		Profile:   profile,
		ChatID:    chatID,
		Kind:      kind,
		Delivered: sendErr == nil,
	}
	if sendErr != nil {
		evt.Error = sendErr.Error()
	}
	if err := s.Recorder.RecordNotification(evt); err != nil {
		log.Printf("[ERROR] record notification: %v", err)
	}
}
