// Package reports provides daily and weekly report generation for the daybook app.
// Reports aggregate per-day task lists into completion summaries.
package reports

import (
	"time"

	"daybook/internal/storage"
)

// DailyReport contains aggregated data for a single day.
type DailyReport struct {
	Date        time.Time       `json:"date"`
	Stats       storage.Stats   `json:"stats"`
	Completed   []storage.Task  `json:"completed"`
	Pending     []storage.Task  `json:"pending"`
	ByCategory  []CategoryCount `json:"by_category"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// CategoryCount represents task counts grouped by category.
type CategoryCount struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Done     int    `json:"done"`
}

// WeeklyReport contains aggregated data for a week.
type WeeklyReport struct {
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Stats          storage.Stats   `json:"stats"`
	ByCategory     []CategoryCount `json:"by_category"`
	DailyBreakdown []DaySummary    `json:"daily_breakdown"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// DaySummary provides a quick overview of a single day within a week.
type DaySummary struct {
	Date      string        `json:"date"`
	DayOfWeek string        `json:"day_of_week"`
	Stats     storage.Stats `json:"stats"`
}
