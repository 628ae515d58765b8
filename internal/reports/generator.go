// Package reports provides daily and weekly report generation for the daybook app.
package reports

import (
	"sort"
	"time"

	"daybook/internal/storage"
)

// Generator creates reports from storage data.
type Generator struct {
	store *storage.Storage
}

// NewGenerator creates a new report generator.
func NewGenerator(store *storage.Storage) *Generator {
	return &Generator{store: store}
}

// GenerateDaily generates a report for a specific date.
func (g *Generator) GenerateDaily(date time.Time) *DailyReport {
	date = startOfDay(date)
	tasks := g.store.TasksFor(date.Format(storage.DayKey))

	var completed, pending []storage.Task
	for _, task := range tasks {
		if task.Done {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}

	return &DailyReport{
		Date:        date,
		Stats:       storage.ComputeStats(tasks),
		Completed:   completed,
		Pending:     pending,
		ByCategory:  countByCategory(tasks),
		GeneratedAt: time.Now(),
	}
}

// GenerateWeekly generates a report for a week starting on the given date.
func (g *Generator) GenerateWeekly(startDate time.Time) *WeeklyReport {
	// Align to start of week (Sunday)
	startDate = startOfWeekSunday(startDate)
	endDate := startDate.AddDate(0, 0, 7)

	var weekTasks []storage.Task
	breakdown := make([]DaySummary, 0, 7)

	for i := 0; i < 7; i++ {
		day := startDate.AddDate(0, 0, i)
		tasks := g.store.TasksFor(day.Format(storage.DayKey))
		weekTasks = append(weekTasks, tasks...)

		breakdown = append(breakdown, DaySummary{
			Date:      day.Format(storage.DayKey),
			DayOfWeek: day.Format("Mon"),
			Stats:     storage.ComputeStats(tasks),
		})
	}

	return &WeeklyReport{
		StartDate:      startDate,
		EndDate:        endDate.Add(-time.Nanosecond), // End of last day
		Stats:          storage.ComputeStats(weekTasks),
		ByCategory:     countByCategory(weekTasks),
		DailyBreakdown: breakdown,
		GeneratedAt:    time.Now(),
	}
}

// countByCategory groups tasks by category, sorted by total (descending).
func countByCategory(tasks []storage.Task) []CategoryCount {
	totals := make(map[string]int)
	dones := make(map[string]int)

	for _, task := range tasks {
		category := task.Category
		if category == "" {
			category = "General"
		}
		totals[category]++
		if task.Done {
			dones[category]++
		}
	}

	byCategory := make([]CategoryCount, 0, len(totals))
	for category, total := range totals {
		byCategory = append(byCategory, CategoryCount{
			Category: category,
			Total:    total,
			Done:     dones[category],
		})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].Total != byCategory[j].Total {
			return byCategory[i].Total > byCategory[j].Total
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return byCategory
}

// startOfDay returns the start of the day (midnight).
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeekSunday returns the start of the week (Sunday).
func startOfWeekSunday(t time.Time) time.Time {
	t = startOfDay(t)
	weekday := int(t.Weekday())
	return t.AddDate(0, 0, -weekday)
}
