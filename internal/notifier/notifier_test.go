package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"Jyotish/internal/chart"
	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
)

var kolkata = model.BirthInput{
	Year: 1997, Month: 2, Day: 8,
	Hour: 7, Minute: 47,
	UTCOffset: 5.5,
	Latitude:  22.5726,
	Longitude: 88.3639,
}

func testNotifier(url string) *TelegramNotifier {
	n := NewTelegramNotifier("token", "100", "")
	n.APIBase = url
	n.RetryInterval = time.Millisecond
	return n
}

func TestSendTo(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken/sendMessage" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	if err := testNotifier(srv.URL).SendTo("42", "<b>hi</b>"); err != nil {
		t.Fatalf("SendTo: %v", err)
	}
	if got["chat_id"] != "42" || got["text"] != "<b>hi</b>" || got["parse_mode"] != "HTML" {
		t.Errorf("payload = %v", got)
	}
}

func TestSendWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int32
		status    int
		wantErr   bool
		wantCalls int32
	}{
		{"first try", 0, http.StatusOK, false, 1},
		{"recovers after server errors", 2, http.StatusBadGateway, false, 3},
		{"gives up", 10, http.StatusBadGateway, true, 3},
		{"client error is final", 10, http.StatusBadRequest, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) <= tt.failures {
					http.Error(w, "nope", tt.status)
					return
				}
				w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			err := testNotifier(srv.URL).SendWithRetry(context.Background(), "100", "hello", 2)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestStartPolling_RepliesToSender(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var reply map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"text":" /dasha asha ","chat":{"id":555}}}]}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			json.NewDecoder(r.Body).Decode(&reply)
			w.Write([]byte(`{"ok":true}`))
			cancel()
		}
	}))
	defer srv.Close()

	var gotChat, gotCmd string
	testNotifier(srv.URL).StartPolling(ctx, func(chatID, command string) string {
		gotChat, gotCmd = chatID, command
		return "ack"
	})

	if gotChat != "555" || gotCmd != "/dasha asha" {
		t.Errorf("handler got (%q, %q)", gotChat, gotCmd)
	}
	if reply["chat_id"] != "555" || reply["text"] != "ack" {
		t.Errorf("reply = %v", reply)
	}
}

func TestOffsetString(t *testing.T) {
	tests := map[float64]string{5.5: "+05:30", -4: "-04:00", 0: "+00:00", 5.75: "+05:45", -3.5: "-03:30"}
	for in, want := range tests {
		if got := OffsetString(in); got != want {
			t.Errorf("OffsetString(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDegreeMinutes(t *testing.T) {
	if got := DegreeMinutes(2.383333); got != "02°22′" {
		t.Errorf("DegreeMinutes = %q", got)
	}
}

func TestFormatChart(t *testing.T) {
	c := chart.Compute(kolkata)
	msg := FormatChart("Asha <test>", c)
	for _, want := range []string{"Asha &lt;test&gt;", "UTC+05:30", "Ascendant", "D9 / D10", c.Ascendant.Sign.String()} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	for _, p := range model.AllPlanets {
		if !strings.Contains(msg, p.String()+":") && !strings.Contains(msg, p.String()+" (R):") {
			t.Errorf("message missing planet %v", p)
		}
	}

	c.Source = "feed<b>&co"
	msg = FormatChart("Asha", c)
	if !strings.Contains(msg, "Source: feed&lt;b&gt;&amp;co") || strings.Contains(msg, "<b>&co") {
		t.Errorf("source not escaped:\n%s", msg)
	}
}

func TestFormatDasha(t *testing.T) {
	c := chart.Compute(kolkata)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	msg := FormatDasha("Asha", c.Dasha, now)
	lineage := dasha.Lineage(dasha.ActiveAt(c.Dasha, now))
	if lineage == "" || !strings.Contains(msg, lineage) {
		t.Errorf("message missing lineage %q:\n%s", lineage, msg)
	}
	if !strings.Contains(msg, "Balance at birth") || !strings.Contains(msg, "from now") {
		t.Errorf("unexpected message:\n%s", msg)
	}

	before := FormatDasha("Asha", c.Dasha, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(before, "No period is active") {
		t.Errorf("pre-birth message:\n%s", before)
	}
}

func TestFormatYogas(t *testing.T) {
	findings := []model.YogaFinding{
		{Name: "Gaja Kesari", Category: model.CategoryLunar, Strength: model.StrengthStrong, Result: "Fame & wisdom."},
		{Name: "Sunapha", Category: model.CategoryLunar, Strength: model.StrengthModerate, Result: "Wealth."},
		{Name: "Musala", Category: model.CategorySignDistribution, Strength: model.StrengthModerate, Result: "Steady."},
	}
	msg := FormatYogas("Asha", findings)
	if strings.Count(msg, "<b>Lunar</b>") != 1 || !strings.Contains(msg, "<b>SignDistribution</b>") {
		t.Errorf("categories not grouped:\n%s", msg)
	}
	if !strings.Contains(msg, "3 yoga(s) present") || !strings.Contains(msg, "Fame &amp; wisdom.") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}

func TestFormatTransition(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	chain := []model.DashaPeriod{
		{Planet: model.Mars, Level: model.Mahadasha, Start: start.AddDate(-3, 0, 0), End: start.AddDate(4, 0, 0)},
		{Planet: model.Jupiter, Level: model.Antardasha, Start: start, End: start.AddDate(1, 0, 0)},
	}
	msg := FormatTransition("Asha", chain, start.AddDate(0, 0, 3))
	for _, want := range []string{"new antardasha", "Mars/Jupiter", "2025-01-01", "ago"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if FormatTransition("Asha", nil, start) != "" {
		t.Error("empty chain should format to nothing")
	}
}

func TestRenderChart(t *testing.T) {
	out := RenderChart("Asha", chart.Compute(kolkata))
	for _, want := range []string{"Asc", "Su", "Mo", "Navamsa", "Nakshatra", "Pis", "Vir"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderDasha(t *testing.T) {
	c := chart.Compute(kolkata)
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := RenderDasha("Asha", c.Dasha, at)
	lineage := dasha.Lineage(dasha.ActiveAt(c.Dasha, at))
	for _, want := range []string{"Vimshottari", "Mahadasha", "Antardasha", "Active at 2025-06-01", lineage} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	early := RenderDasha("Asha", c.Dasha, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(early, "No period is active") {
		t.Errorf("pre-birth render:\n%s", early)
	}
}

func TestRenderYogas(t *testing.T) {
	findings := []model.YogaFinding{
		{Name: "Budhaditya", Category: model.CategorySolar, Strength: model.StrengthModerate, Applicable: true,
			Planets: []model.Planet{model.Sun, model.Mercury}, Houses: []int{10}},
		{Name: "Kemadruma", Category: model.CategoryLunar, Strength: model.StrengthWeak},
	}
	out := RenderYogas("Asha", findings)
	for _, want := range []string{"1 yoga(s)", "Budhaditya", "Su Me", "Kemadruma", "no"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}
