package reports

import (
	"strings"
	"testing"
	"time"

	"daybook/internal/storage"
)

func seedStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}

	add := func(day, title, clock, category string, done bool) {
		t.Helper()
		task, err := store.AddTask(day, title, clock, category)
		if err != nil {
			t.Fatalf("AddTask(%q): %v", title, err)
		}
		if done {
			if err := store.SetTaskDone(day, task.ID, true); err != nil {
				t.Fatalf("SetTaskDone(%q): %v", title, err)
			}
		}
	}

	// 2026-08-31 is a Monday; the surrounding week starts Sunday 2026-08-30.
	add("2026-08-31", "standup", "09:30", "Work", true)
	add("2026-08-31", "review PRs", "11:00", "Work", false)
	add("2026-08-31", "groceries", "18:00", "Home", true)
	add("2026-09-01", "dentist", "10:00", "Personal", false)
	return store
}

func TestGenerateDaily(t *testing.T) {
	gen := NewGenerator(seedStorage(t))

	report := gen.GenerateDaily(time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local))

	if report.Stats.Total != 3 || report.Stats.Done != 2 {
		t.Errorf("Stats = %+v, want Total=3 Done=2", report.Stats)
	}
	if report.Stats.Percent != 67 {
		t.Errorf("Percent = %d, want 67", report.Stats.Percent)
	}
	if len(report.Completed) != 2 || len(report.Pending) != 1 {
		t.Errorf("Completed=%d Pending=%d, want 2/1", len(report.Completed), len(report.Pending))
	}

	if len(report.ByCategory) != 2 {
		t.Fatalf("ByCategory has %d entries, want 2", len(report.ByCategory))
	}
	// Work has more tasks, so it sorts first.
	if report.ByCategory[0].Category != "Work" || report.ByCategory[0].Total != 2 || report.ByCategory[0].Done != 1 {
		t.Errorf("ByCategory[0] = %+v", report.ByCategory[0])
	}
	if report.ByCategory[1].Category != "Home" || report.ByCategory[1].Done != 1 {
		t.Errorf("ByCategory[1] = %+v", report.ByCategory[1])
	}
}

func TestGenerateDaily_EmptyDay(t *testing.T) {
	gen := NewGenerator(seedStorage(t))

	report := gen.GenerateDaily(time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local))

	if report.Stats.Total != 0 || report.Stats.Percent != 0 {
		t.Errorf("Stats = %+v, want zero", report.Stats)
	}
	if len(report.ByCategory) != 0 {
		t.Errorf("ByCategory = %v, want empty", report.ByCategory)
	}
}

func TestGenerateWeekly(t *testing.T) {
	gen := NewGenerator(seedStorage(t))

	// Any day within the week aligns back to Sunday.
	report := gen.GenerateWeekly(time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local))

	if got := report.StartDate.Format(storage.DayKey); got != "2026-08-30" {
		t.Errorf("StartDate = %s, want 2026-08-30", got)
	}
	if report.Stats.Total != 4 || report.Stats.Done != 2 {
		t.Errorf("Stats = %+v, want Total=4 Done=2", report.Stats)
	}
	if len(report.DailyBreakdown) != 7 {
		t.Fatalf("DailyBreakdown has %d days, want 7", len(report.DailyBreakdown))
	}

	// Monday is index 1 from the Sunday start.
	mon := report.DailyBreakdown[1]
	if mon.Date != "2026-08-31" || mon.DayOfWeek != "Mon" {
		t.Errorf("breakdown[1] = %+v", mon)
	}
	if mon.Stats.Total != 3 || mon.Stats.Done != 2 {
		t.Errorf("Monday stats = %+v, want Total=3 Done=2", mon.Stats)
	}
}

func TestFormatDailyMarkdown(t *testing.T) {
	gen := NewGenerator(seedStorage(t))
	report := gen.GenerateDaily(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local))

	md := FormatDailyMarkdown(report)

	for _, want := range []string{
		"# Daily Report - Monday, August 31, 2026",
		"2/3 done (67%)",
		"- Work: 1/2",
		"- [x] 09:30 standup (Work)",
		"- [ ] 11:00 review PRs (Work)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatWeeklyMarkdown(t *testing.T) {
	gen := NewGenerator(seedStorage(t))
	report := gen.GenerateWeekly(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local))

	md := FormatWeeklyMarkdown(report)

	for _, want := range []string{
		"# Weekly Report - Aug 30 to Sep 5, 2026",
		"2/4 done (50%)",
		"| Mon | 2026-08-31 | 2 | 3 | 67% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatDailyJSON(t *testing.T) {
	gen := NewGenerator(seedStorage(t))
	report := gen.GenerateDaily(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local))

	data, err := FormatDailyJSON(report)
	if err != nil {
		t.Fatalf("FormatDailyJSON() error = %v", err)
	}
	for _, want := range []string{`"by_category"`, `"percent": 67`, `"standup"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %q", want)
		}
	}
}
