package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"Jyotish/internal/dasha"
	"Jyotish/internal/model"
)

const cellWidth = 12

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(3).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	ascCellStyle = cellStyle.BorderForeground(lipgloss.Color("214"))
	centerStyle  = lipgloss.NewStyle().
			Width(2*cellWidth+2).
			Height(2*3+2).
			Align(lipgloss.Center, lipgloss.Center)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	rowStyle    = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = rowStyle.Bold(true).Foreground(lipgloss.Color("214"))
	mutedStyle  = rowStyle.Foreground(lipgloss.Color("241"))
)

var planetAbbrev = map[model.Planet]string{
	model.Sun:     "Su",
	model.Moon:    "Mo",
	model.Mars:    "Ma",
	model.Mercury: "Me",
	model.Jupiter: "Ju",
	model.Venus:   "Ve",
	model.Saturn:  "Sa",
	model.Rahu:    "Ra",
	model.Ketu:    "Ke",
}

// southIndian is the fixed sign layout of the square chart, row by row. -1 marks
// the centre block.
var southIndian = [4][4]model.Sign{
	{model.Pisces, model.Aries, model.Taurus, model.Gemini},
	{model.Aquarius, -1, -1, model.Cancer},
	{model.Capricorn, -1, -1, model.Leo},
	{model.Sagittarius, model.Scorpio, model.Libra, model.Virgo},
}

func signCell(s model.Sign, slots []model.HouseSlot) string {
	var slot model.HouseSlot
	for _, h := range slots {
		if h.Sign == s {
			slot = h
			break
		}
	}
	var names []string
	for _, p := range slot.Planets {
		n := planetAbbrev[p.Planet]
		if p.Retrograde {
			n += "ᴿ"
		}
		names = append(names, n)
	}
	head := s.String()[:3]
	style := cellStyle
	if slot.Number == 1 {
		head += " Asc"
		style = ascCellStyle
	}
	return style.Render(head + "\n" + strings.Join(names, " "))
}

// RenderGrid draws house slots as a South Indian square chart.
func RenderGrid(title string, slots []model.HouseSlot) string {
	cell := func(r, c int) string { return signCell(southIndian[r][c], slots) }

	top := lipgloss.JoinHorizontal(lipgloss.Top, cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3))
	left := lipgloss.JoinVertical(lipgloss.Left, cell(1, 0), cell(2, 0))
	right := lipgloss.JoinVertical(lipgloss.Left, cell(1, 3), cell(2, 3))
	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, centerStyle.Render(titleStyle.Render(title)), right)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cell(3, 0), cell(3, 1), cell(3, 2), cell(3, 3))
	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// RenderChart renders a chart for the terminal: the birth chart grid, the navamsa
// grid and a planet table.
func RenderChart(title string, c *model.Chart) string {
	grids := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderGrid(title+"\nD1", c.Houses),
		"  ",
		RenderGrid("Navamsa\nD9", c.Navamsa),
	)

	t := newTable("Planet", "Sign", "Degree", "Nakshatra", "Pada", "House", "R").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle
		})
	t.Row("Asc", c.Ascendant.Sign.String(), DegreeMinutes(c.Ascendant.Longitude-float64(c.Ascendant.Sign)*30),
		c.Ascendant.Nakshatra.String(), fmt.Sprint(c.Ascendant.Pada), "1", "")
	for _, p := range c.Planets {
		retro := ""
		if p.Retrograde {
			retro = "R"
		}
		t.Row(p.Planet.String(), p.Sign.String(), DegreeMinutes(p.DegreeInSign()),
			p.Nakshatra.String(), fmt.Sprint(p.Pada), fmt.Sprint(p.House), retro)
	}
	return lipgloss.JoinVertical(lipgloss.Left, grids, t.Render())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
}

// RenderDasha renders the mahadasha sequence with the running chain at the given
// instant highlighted, followed by the chain itself.
func RenderDasha(title string, periods []model.DashaPeriod, at time.Time) string {
	chain := dasha.ActiveAt(periods, at)
	active := -1
	t := newTable("Mahadasha", "Start", "End", "Years")
	for i, p := range periods {
		if len(chain) > 0 && p.Start.Equal(chain[0].Start) && p.Planet == chain[0].Planet {
			active = i
		}
		t.Row(p.Planet.String(), p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), fmt.Sprintf("%.2f", p.Years))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return headerStyle
		case active:
			return activeStyle
		}
		return rowStyle
	})

	parts := []string{titleStyle.Render(title + " | Vimshottari dasha"), t.Render()}
	if len(chain) == 0 {
		parts = append(parts, mutedStyle.Render("No period is active at "+at.Format("2006-01-02")))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	ct := newTable("Level", "Planet", "Start", "End").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle
		})
	for _, p := range chain {
		ct.Row(p.Level.String(), p.Planet.String(), p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	}
	parts = append(parts, "Active at "+at.Format("2006-01-02")+": "+dasha.Lineage(chain), ct.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderYogas renders findings as a table. Findings that do not apply are dimmed.
func RenderYogas(title string, findings []model.YogaFinding) string {
	t := newTable("Yoga", "Category", "Strength", "Present", "Planets", "Houses")
	for _, f := range findings {
		present := "no"
		if f.Applicable {
			present = "yes"
		}
		planets := make([]string, len(f.Planets))
		for i, p := range f.Planets {
			planets[i] = planetAbbrev[p]
		}
		houses := make([]string, len(f.Houses))
		for i, h := range f.Houses {
			houses[i] = fmt.Sprint(h)
		}
		t.Row(f.Name, string(f.Category), string(f.Strength), present,
			strings.Join(planets, " "), strings.Join(houses, ","))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(findings) && !findings[row].Applicable:
			return mutedStyle
		}
		return rowStyle
	})
	heading := titleStyle.Render(fmt.Sprintf("%s | %d yoga(s)", title, countApplicable(findings)))
	return lipgloss.JoinVertical(lipgloss.Left, heading, t.Render())
}

func countApplicable(findings []model.YogaFinding) int {
	n := 0
	for _, f := range findings {
		if f.Applicable {
			n++
		}
	}
	return n
}
