package notifier

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
	"Jyotish/internal/organizer"
)

var printer = message.NewPrinter(language.English)

// DegreeMinutes renders a sign-relative degree as 12°34′.
func DegreeMinutes(deg float64) string {
	d := math.Floor(deg)
	m := math.Floor((deg - d) * 60)
	return fmt.Sprintf("%02d°%02d′", int(d), int(m))
}

// OffsetString renders an hour offset as +05:30.
func OffsetString(hours float64) string {
	sign := '+'
	if hours < 0 {
		sign = '-'
		hours = -hours
	}
	mins := int(math.Round(hours * 60))
	return fmt.Sprintf("%c%02d:%02d", sign, mins/60, mins%60)
}

func planetLine(p model.PlanetPosition) string {
	retro := ""
	if p.Retrograde {
		retro = " (R)"
	}
	return fmt.Sprintf("%s%s: %s %s, %s pada %d, %s house",
		p.Planet, retro, p.Sign, DegreeMinutes(p.DegreeInSign()),
		p.Nakshatra, p.Pada, humanize.Ordinal(p.House))
}

// FormatChart formats the birth chart into a Telegram message.
func FormatChart(title string, c *model.Chart) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🪐 <b>%s</b> | %04d-%02d-%02d %02d:%02d (UTC%s)\n",
		html.EscapeString(title), c.Input.Year, c.Input.Month, c.Input.Day,
		c.Input.Hour, c.Input.Minute, OffsetString(c.Input.UTCOffset)))
	b.WriteString(fmt.Sprintf("Source: %s | Ayanamsa %s\n\n", html.EscapeString(c.Source), DegreeMinutes(c.Ayanamsa)))

	asc := c.Ascendant
	b.WriteString(fmt.Sprintf("⬆️ <b>Ascendant:</b> %s %s, %s pada %d\n\n",
		asc.Sign, DegreeMinutes(asc.Longitude-float64(asc.Sign)*30), asc.Nakshatra, asc.Pada))

	b.WriteString("📍 <b>Planets:</b>\n")
	for _, p := range c.Planets {
		b.WriteString("  " + planetLine(p) + "\n")
	}

	b.WriteString("\n🔢 <b>Divisional signs (D9 / D10):</b>\n")
	for _, p := range c.Planets {
		d9, ok9 := organizer.SlotOf(c.Navamsa, p.Planet)
		d10, ok10 := organizer.SlotOf(c.Dasamsa, p.Planet)
		if !ok9 || !ok10 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s: %s / %s\n", p.Planet, d9.Sign, d10.Sign))
	}
	return b.String()
}

// FormatDasha formats the chain active at now plus the next few sub-periods.
func FormatDasha(title string, periods []model.DashaPeriod, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("⏳ <b>%s</b> | Vimshottari dasha\n\n", html.EscapeString(title)))

	if len(periods) > 0 && periods[0].Balance != nil {
		bal := periods[0].Balance
		b.WriteString(printer.Sprintf("Balance at birth: %s %.2f years (%d days)\n\n",
			periods[0].Planet, bal.Years, int64(math.Round(bal.Days))))
	}

	chain := dasha.ActiveAt(periods, now)
	if len(chain) == 0 {
		b.WriteString("No period is active at this date.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Active: <b>%s</b>\n", dasha.Lineage(chain)))
	for _, p := range chain {
		b.WriteString(fmt.Sprintf("  %s %s: %s → %s (ends %s)\n",
			p.Level, p.Planet, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"),
			humanize.RelTime(now, p.End, "from now", "ago")))
	}

	level := chain[len(chain)-1].Level
	next := dasha.Upcoming(periods, level, now, 3)
	if len(next) > 0 {
		b.WriteString(fmt.Sprintf("\nNext %s periods:\n", strings.ToLower(level.String())))
		for _, p := range next {
			b.WriteString(fmt.Sprintf("  %s from %s\n", p.Planet, p.Start.Format("2006-01-02")))
		}
	}
	return b.String()
}

// FormatYogas lists applicable findings grouped by category, in rule order.
func FormatYogas(title string, findings []model.YogaFinding) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("✨ <b>%s</b> | %s\n", html.EscapeString(title),
		printer.Sprintf("%d yoga(s) present", len(findings))))
	if len(findings) == 0 {
		return b.String()
	}

	var category model.YogaCategory
	for _, f := range findings {
		if f.Category != category {
			category = f.Category
			b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", category))
		}
		b.WriteString(fmt.Sprintf("  • %s [%s]: %s\n", f.Name, f.Strength, html.EscapeString(f.Result)))
	}
	return b.String()
}

// FormatTransition announces a newly started period.
func FormatTransition(title string, chain []model.DashaPeriod, now time.Time) string {
	if len(chain) == 0 {
		return ""
	}
	p := chain[len(chain)-1]
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>%s</b> | new %s\n\n", html.EscapeString(title), strings.ToLower(p.Level.String())))
	b.WriteString(fmt.Sprintf("Now running: <b>%s</b>\n", dasha.Lineage(chain)))
	b.WriteString(fmt.Sprintf("%s period: %s → %s\n", p.Planet,
		p.Start.Format("2006-01-02"), p.End.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Started %s, lasts %s.\n",
		humanize.RelTime(p.Start, now, "ago", "from now"),
		strings.TrimSpace(humanize.RelTime(p.Start, p.End, "", ""))))
	return b.String()
}
