package reports

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/aggregate"
)

const displayDateLayout = "Jan 2"

func formatDate(date string) string {
	t, err := time.Parse(expense.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}

func ordinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func formatDayRange(startDay, endDay int) string {
	if startDay == endDay {
		return fmt.Sprintf("%d%s", startDay, ordinal(startDay))
	}
	return fmt.Sprintf("%d%s to %d%s", startDay, ordinal(startDay), endDay, ordinal(endDay))
}

// FormatOverview renders the home view for chat.
func (g *Generator) FormatOverview(o *Overview) string {
	res := make([]string, 0)
	res = append(res, fmt.Sprintf("📋 Today (%s)", formatDate(o.Date)))

	if len(o.Today) == 0 {
		res = append(res, "No daily expenses today")
	}
	for _, line := range o.Today {
		res = append(res, g.formatLine(line))
	}
	res = append(res, "", fmt.Sprintf("Daily total: %s %.2f", g.currency, o.DailyTotal))

	if o.OtherTotal > 0 {
		res = append(res, fmt.Sprintf("Other expenses: %s %.2f (%s)",
			g.currency, o.OtherTotal, strings.Join(o.OtherCategories, ", ")))
	}

	if o.TargetSet {
		res = append(res, "",
			fmt.Sprintf("🎯 Target: %s %.2f", g.currency, o.Target),
			fmt.Sprintf("Remaining: %s %.2f", g.currency, o.Remaining),
			fmt.Sprintf("Progress: %.0f%%", o.Progress),
		)
	}
	return strings.Join(res, "\n")
}

// FormatHistory renders the full-history view for chat.
func (g *Generator) FormatHistory(h *History) string {
	res := make([]string, 0)

	res = append(res, fmt.Sprintf("📋 Today (%s)", formatDate(h.Date)))
	if len(h.Today) == 0 {
		res = append(res, "No expenses today")
	}
	for _, line := range h.Today {
		res = append(res, g.formatLine(line))
	}
	res = append(res, fmt.Sprintf("Total: %s %.2f", g.currency, h.TodayDailyTotal))
	if h.TodayOtherTotal > 0 {
		res = append(res, fmt.Sprintf("Other today: %s %.2f", g.currency, h.TodayOtherTotal))
	}

	res = append(res, "", "📆 This week")
	if len(h.RestOfWeek) == 0 {
		res = append(res, "No other expenses this week")
	}
	for _, day := range h.RestOfWeek {
		res = append(res, fmt.Sprintf("%s: %s %.2f", formatDate(day.Date), g.currency, day.Total))
	}

	res = append(res, "", "🗓 Earlier this month")
	if len(h.RestOfMonth) == 0 {
		res = append(res, "No other expenses this month")
	}
	for _, week := range h.RestOfMonth {
		res = append(res, fmt.Sprintf("📅 Week %d (%s) - %s %.2f",
			week.Week, formatDayRange(week.StartDay, week.EndDay), g.currency, week.Total))
		for _, day := range week.Days {
			res = append(res, fmt.Sprintf("  %s: %s %.2f", formatDate(day.Date), g.currency, day.Total))
			for _, line := range day.Lines {
				res = append(res, "    • "+g.formatLine(line))
			}
		}
	}
	return strings.Join(res, "\n")
}

// FormatMonthSummary renders the month report for chat.
func (g *Generator) FormatMonthSummary(m *MonthSummary) string {
	res := make([]string, 0)
	res = append(res, fmt.Sprintf("📅 %s %d summary", m.Month, m.Year), "")

	res = append(res, fmt.Sprintf("📊 Daily expenses: %s %.2f", g.currency, m.DailyTotal))
	for _, week := range m.Weeks {
		res = append(res, fmt.Sprintf("Week %d (%s): %s %.2f",
			week.Week, formatDayRange(week.StartDay, week.EndDay), g.currency, week.Total))
		for _, day := range week.Days {
			res = append(res, fmt.Sprintf("  %s: %s %.2f", formatDate(day.Date), g.currency, day.Total))
		}
	}

	res = append(res, "", fmt.Sprintf("💼 Other expenses: %s %.2f", g.currency, m.OtherTotal))
	for _, rec := range m.Other {
		line := fmt.Sprintf("%s - %s: %s %.2f", formatDate(rec.Date), rec.Category, g.currency, rec.Amount)
		if rec.Note != "" {
			line += fmt.Sprintf(" (%s)", rec.Note)
		}
		res = append(res, line)
	}

	res = append(res, "", "📈 By category")
	for _, line := range m.ByCategory {
		res = append(res, fmt.Sprintf("%s: %s %.2f", line.Category, g.currency, line.Amount))
	}

	res = append(res, "", fmt.Sprintf("Total: %s %.2f", g.currency, m.Total))
	return strings.Join(res, "\n")
}

func (g *Generator) formatLine(line aggregate.Line) string {
	res := fmt.Sprintf("%s: %s %.2f", line.Category, g.currency, line.Amount)
	if line.Note != "" && line.Note != line.Category {
		res += fmt.Sprintf(" (%s)", line.Note)
	}
	return res
}
