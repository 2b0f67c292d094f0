package scheduler

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"Jyotish/internal/chart"
	"Jyotish/internal/config"
	"Jyotish/internal/notifier"
)

const historyLimit = 5

const helpText = `Available commands:
• /profiles - profiles followed in this chat
• /chart &lt;name&gt; - birth chart
• /dasha &lt;name&gt; - running dasha periods
• /yogas &lt;name&gt; - yogas present in the chart
• /history &lt;name&gt; - recent announcements`

// HandleCommand processes a chat command and returns the reply. A chat only sees
// the profiles whose messages are delivered to it.
func (s *Scheduler) HandleCommand(chatID, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	name, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	arg := strings.Join(fields[1:], " ")

	cfg := s.config()
	visible := visibleProfiles(cfg, chatID)

	switch name {
	case "/profiles":
		return formatProfiles(visible)
	case "/chart", "/dasha", "/yogas", "/history":
		p, err := pickProfile(visible, arg)
		if err != nil {
			return html.EscapeString(err.Error())
		}
		if name == "/history" {
			return s.history(p)
		}
		c, err := s.profileChart(p)
		if err != nil {
			log.Printf("[ERROR] command %s: %v", name, err)
			return "❌ Chart unavailable, try again later."
		}
		switch name {
		case "/chart":
			return notifier.FormatChart(p.Name, c)
		case "/dasha":
			return notifier.FormatDasha(p.Name, c.Dasha, s.now())
		default:
			return notifier.FormatYogas(p.Name, chart.ClassifyYogas(c))
		}
	default:
		return helpText
	}
}

func visibleProfiles(cfg *config.Config, chatID string) []config.Profile {
	var out []config.Profile
	for _, p := range cfg.Profiles {
		if cfg.ChatFor(p) == chatID {
			out = append(out, p)
		}
	}
	return out
}

// pickProfile resolves a name among profiles. An empty name is accepted when only
// one profile is visible.
func pickProfile(profiles []config.Profile, name string) (config.Profile, error) {
	if name == "" {
		if len(profiles) == 1 {
			return profiles[0], nil
		}
		return config.Profile{}, errors.New("usage: /<command> <profile name>")
	}
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return config.Profile{}, fmt.Errorf("%w: %q", config.ErrUnknownProfile, name)
}

func formatProfiles(profiles []config.Profile) string {
	if len(profiles) == 0 {
		return "No profiles are followed in this chat."
	}
	var b strings.Builder
	b.WriteString("👤 <b>Profiles</b>\n")
	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("  • %s, born %s %s (UTC%s)\n",
			html.EscapeString(p.Name), html.EscapeString(p.Date), html.EscapeString(p.Time),
			html.EscapeString(p.UTCOffset)))
	}
	return b.String()
}

func (s *Scheduler) history(p config.Profile) string {
	rows, err := s.Recorder.RecentTransitions(p.Name, historyLimit)
	if err != nil {
		log.Printf("[ERROR] load history for %s: %v", p.Name, err)
		return "❌ History unavailable."
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No announcements recorded for %s yet.", html.EscapeString(p.Name))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📜 <b>%s</b> | recent announcements\n", html.EscapeString(p.Name)))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s: %s (%s → %s)\n", r.RecordedAt.Format("2006-01-02"),
			r.Lineage, r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")))
	}
	return b.String()
}
