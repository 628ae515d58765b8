// Package reports provides daily and weekly report generation for the daybook app.
package reports

import (
	"fmt"
	"strings"
)

// FormatDailyMarkdown formats a daily report as human-readable Markdown.
func FormatDailyMarkdown(report *DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily Report - %s\n\n", report.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "## Tasks: %d/%d done (%d%%)\n\n", report.Stats.Done, report.Stats.Total, report.Stats.Percent)

	if len(report.ByCategory) > 0 {
		b.WriteString("### By Category\n\n")
		for _, c := range report.ByCategory {
			fmt.Fprintf(&b, "- %s: %d/%d\n", c.Category, c.Done, c.Total)
		}
		b.WriteString("\n")
	}

	if len(report.Completed) > 0 {
		b.WriteString("### Completed\n\n")
		for _, task := range report.Completed {
			fmt.Fprintf(&b, "- [x] %s %s (%s)\n", task.Time, task.Title, task.Category)
		}
		b.WriteString("\n")
	}

	if len(report.Pending) > 0 {
		b.WriteString("### Pending\n\n")
		for _, task := range report.Pending {
			fmt.Fprintf(&b, "- [ ] %s %s (%s)\n", task.Time, task.Title, task.Category)
		}
		b.WriteString("\n")
	}

	if report.Stats.Total == 0 {
		b.WriteString("No tasks recorded for this day.\n\n")
	}

	fmt.Fprintf(&b, "---\nGenerated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// FormatWeeklyMarkdown formats a weekly report as human-readable Markdown.
func FormatWeeklyMarkdown(report *WeeklyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Report - %s to %s\n\n",
		report.StartDate.Format("Jan 2"), report.EndDate.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "## Tasks: %d/%d done (%d%%)\n\n", report.Stats.Done, report.Stats.Total, report.Stats.Percent)

	if len(report.ByCategory) > 0 {
		b.WriteString("### By Category\n\n")
		for _, c := range report.ByCategory {
			fmt.Fprintf(&b, "- %s: %d/%d\n", c.Category, c.Done, c.Total)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Daily Breakdown\n\n")
	b.WriteString("| Day | Date | Done | Total | % |\n")
	b.WriteString("|-----|------|------|-------|---|\n")
	for _, day := range report.DailyBreakdown {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d%% |\n",
			day.DayOfWeek, day.Date, day.Stats.Done, day.Stats.Total, day.Stats.Percent)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "---\nGenerated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}
