// Package main is the entry point for the daybook application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"daybook/internal/config"
	"daybook/internal/logger"
	"daybook/internal/notify"
	"daybook/internal/reminder"
	"daybook/internal/storage"
	"daybook/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `daybook - A per-day task list for your terminal

USAGE:
    daybook [OPTIONS]
    daybook <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Generate a daily report (Markdown)
    export --weekly  Generate a weekly report
    export -f json   Output report as JSON

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    daybook is a terminal-based task list organized by day. Each task has a
    time of day and a category, and desktop reminders fire shortly before a
    task is due.

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2         Jump to specific pane
        ←/h, →/l     Previous / next day
        t            Jump to today
        C            Clear the current day
        ?            Show help overlay
        q            Quit

    Tasks Pane:
        j/k, ↓/↑     Navigate
        a            Add task (title, time, category)
        d/Space      Toggle done
        x            Delete task
        g/G          Go to top/bottom

    Categories Pane:
        j/k, ↓/↑     Navigate
        a            Add category
        x            Delete category

DATA STORAGE:
    All data is stored in ~/.daybook/ as plain JSON files:
        tasks.json       - Tasks, bucketed by day
        categories.json  - Category registry

CONFIGURATION:
    Optional config file: ~/.config/daybook/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    daybook

    # Create a backup
    daybook backup

    # Restore from a backup
    daybook restore --latest

    # Generate today's report
    daybook export

    # Generate weekly report as JSON
    daybook export --weekly --format json

    # Show version
    daybook --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("daybook version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/daybook/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage with configured data directory
	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// Set up the log file; the TUI owns the terminal
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.GetDataDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
	}

	p := ui.NewProgram(store, styles, appCfg)

	// Start the reminder scheduler if enabled. Fired reminders are pushed
	// into the running program so the TUI can surface them too.
	var sched *reminder.Scheduler
	if cfg.Reminders.Enabled {
		interval := reminder.DefaultInterval
		if cfg.Reminders.IntervalSeconds > 0 {
			interval = time.Duration(cfg.Reminders.IntervalSeconds) * time.Second
		}
		sched = reminder.New(store, notify.New(), reminder.Config{
			Interval: interval,
			Sound:    cfg.Reminders.Sound,
			OnFire: func(task storage.Task) {
				p.Send(ui.ReminderFiredMsg{Task: task})
			},
		})
		sched.Start()
	}

	_, err = p.Run()

	if sched != nil {
		sched.Stop()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
