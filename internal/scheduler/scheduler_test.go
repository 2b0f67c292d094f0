package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"Jyotish/internal/chart"
	"Jyotish/internal/collector"
	"Jyotish/internal/config"
	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
	"Jyotish/internal/recorder"
	"Jyotish/internal/tracker"
)

type sentMessage struct {
	chatID string
	text   string
}

type fakeSender struct {
	mu   sync.Mutex
	fail bool
	sent []sentMessage
}

func (f *fakeSender) SendWithRetry(_ context.Context, chatID, text string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("telegram down")
	}
	f.sent = append(f.sent, sentMessage{chatID, text})
	return nil
}

func (f *fakeSender) take() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.sent
	f.sent = nil
	return out
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "100"
	cfg.Schedule.WatchCron = "0 0 7 * * *"
	cfg.Schedule.DigestCron = "0 0 9 * * 1"
	cfg.Profiles = []config.Profile{
		{Name: "Asha", Date: "1997-02-08", Time: "07:47", UTCOffset: "+05:30", Latitude: 22.5726, Longitude: 88.3639},
		{Name: "Dev", Date: "1990-07-15", Time: "14:30", UTCOffset: "-04:00", Latitude: 40.7128, Longitude: -74.006, ChatID: "200"},
	}
	return cfg
}

var testNow = time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *fakeSender) {
	t.Helper()
	dir := t.TempDir()
	tm, err := tracker.NewManager(filepath.Join(dir, "announced.json"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	t.Cleanup(func() { rec.Close() })

	sender := &fakeSender{}
	col := collector.NewCollector(nil, chart.WithDashaDepth(3))
	s := NewScheduler(context.Background(), testConfig(), col, tm, sender, rec)
	s.now = func() time.Time { return testNow }
	return s, sender
}

func TestWatchTask_AnnouncesOnlyChanges(t *testing.T) {
	s, sender := newTestScheduler(t)

	s.watchTask()
	sent := sender.take()
	if len(sent) != 2 {
		t.Fatalf("first run sent %d messages, want 2", len(sent))
	}
	chats := map[string]string{}
	for _, m := range sent {
		chats[m.chatID] = m.text
	}
	if !strings.Contains(chats["100"], "Asha") || !strings.Contains(chats["200"], "Dev") {
		t.Errorf("messages routed wrongly: %v", chats)
	}
	if !strings.Contains(chats["100"], "new antardasha") {
		t.Errorf("unexpected announcement:\n%s", chats["100"])
	}

	s.watchTask()
	if sent := sender.take(); len(sent) != 0 {
		t.Errorf("unchanged periods re-announced: %d messages", len(sent))
	}

	s.now = func() time.Time { return testNow.AddDate(20, 0, 0) }
	s.watchTask()
	if sent := sender.take(); len(sent) != 2 {
		t.Errorf("twenty years later sent %d messages, want 2", len(sent))
	}
}

func TestWatchTask_FailedSendIsRetriedNextRun(t *testing.T) {
	s, sender := newTestScheduler(t)

	sender.fail = true
	s.watchTask()
	if _, ok := s.Tracker.Last("Asha"); ok {
		t.Fatal("undelivered announcement was marked")
	}

	sender.fail = false
	s.watchTask()
	if sent := sender.take(); len(sent) != 2 {
		t.Fatalf("retry run sent %d messages, want 2", len(sent))
	}
	a, ok := s.Tracker.Last("Asha")
	if !ok {
		t.Fatal("announcement not marked after delivery")
	}
	c := chart.Compute(mustInput(t, s.config().Profiles[0]))
	want := dasha.Truncate(dasha.ActiveAt(c.Dasha, testNow), watchLevel)
	if len(a.Lineage) != len(want) || a.Lineage[len(a.Lineage)-1] != want[len(want)-1].Planet {
		t.Errorf("marked lineage = %v, want %s", a.Lineage, dasha.Lineage(want))
	}
}

func mustInput(t *testing.T, p config.Profile) model.BirthInput {
	t.Helper()
	in, err := p.BirthInput()
	if err != nil {
		t.Fatalf("BirthInput: %v", err)
	}
	return in
}

func TestDigestTask(t *testing.T) {
	s, sender := newTestScheduler(t)
	s.digestTask()
	sent := sender.take()
	if len(sent) != 2 {
		t.Fatalf("digest sent %d messages, want 2", len(sent))
	}
	for _, m := range sent {
		if !strings.Contains(m.text, "yoga(s) present") {
			t.Errorf("unexpected digest:\n%s", m.text)
		}
	}
}

func TestHandleCommand(t *testing.T) {
	s, _ := newTestScheduler(t)

	tests := []struct {
		name    string
		chatID  string
		command string
		want    string
		notWant string
	}{
		{"help on unknown command", "100", "/start", "Available commands", ""},
		{"empty command", "100", "   ", "Available commands", ""},
		{"profiles for chat", "100", "/profiles", "Asha", "Dev"},
		{"profiles for other chat", "200", "/profiles", "Dev", "Asha"},
		{"no profiles", "300", "/profiles", "No profiles", ""},
		{"dasha defaults to the only profile", "100", "/dasha", "Vimshottari", ""},
		{"chart with bot suffix", "100", "/chart@JyotishBot asha", "Ascendant", ""},
		{"yogas", "200", "/yogas Dev", "yoga(s) present", ""},
		{"profile of another chat", "100", "/yogas Dev", "unknown profile", ""},
		{"missing name", "300", "/chart", "usage", ""},
		{"empty history", "100", "/history Asha", "No announcements", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HandleCommand(tt.chatID, tt.command)
			if !strings.Contains(got, tt.want) {
				t.Errorf("reply missing %q:\n%s", tt.want, got)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("reply should not contain %q:\n%s", tt.notWant, got)
			}
		})
	}
}

func TestFormatProfiles_EscapesFields(t *testing.T) {
	got := formatProfiles([]config.Profile{
		{Name: "Asha", Date: "1997-02-08<i>", Time: "07:47&", UTCOffset: "<+05:30>"},
	})
	for _, want := range []string{"1997-02-08&lt;i&gt;", "07:47&amp;", "UTC&lt;+05:30&gt;"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<i>") {
		t.Errorf("raw markup leaked:\n%s", got)
	}
}

func TestHandleCommand_HistoryAfterWatch(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.watchTask()

	a, ok := s.Tracker.Last("Asha")
	if !ok {
		t.Fatal("no announcement marked")
	}
	got := s.HandleCommand("100", "/history asha")
	if !strings.Contains(got, a.Lineage[0].String()+"/"+a.Lineage[1].String()) {
		t.Errorf("history missing lineage %v:\n%s", a.Lineage, got)
	}
}

func TestReloadProfiles_PrunesRemoved(t *testing.T) {
	s, sender := newTestScheduler(t)
	s.watchTask()
	sender.take()

	cfg := testConfig()
	cfg.Profiles = cfg.Profiles[:1]
	s.ReloadProfiles(cfg)

	if _, ok := s.Tracker.Last("Dev"); ok {
		t.Error("removed profile still tracked")
	}
	if _, ok := s.Tracker.Last("Asha"); !ok {
		t.Error("kept profile lost its history")
	}
	s.watchTask()
	if sent := sender.take(); len(sent) != 0 {
		t.Errorf("reload triggered %d announcements", len(sent))
	}
	if got := s.HandleCommand("200", "/profiles"); !strings.Contains(got, "No profiles") {
		t.Errorf("removed profile still visible:\n%s", got)
	}
}

func TestWatchConfig_AppliesChanges(t *testing.T) {
	s, _ := newTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Ctx = ctx

	changes := make(chan *config.Config)
	done := make(chan struct{})
	go func() {
		s.WatchConfig(changes)
		close(done)
	}()

	cfg := testConfig()
	cfg.Profiles[0].Name = "Asha Rao"
	changes <- cfg
	close(changes)
	<-done

	if got := s.config().Profiles[0].Name; got != "Asha Rao" {
		t.Errorf("profile name = %q after reload", got)
	}
}

func TestRegisterAll(t *testing.T) {
	s, _ := newTestScheduler(t)
	if err := s.RegisterAll("0 0 7 * * *", "0 0 9 * * 1"); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if n := len(s.Cron.Entries()); n != 2 {
		t.Errorf("registered %d entries, want 2", n)
	}
	if err := s.RegisterAll("not a cron", "0 0 9 * * 1"); err == nil || !strings.Contains(err.Error(), "watch task") {
		t.Errorf("expected watch task error, got %v", err)
	}
}
