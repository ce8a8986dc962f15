package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/config"
	"github.com/jask/rangepicker/internal/database"
	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/presets"
	"github.com/jask/rangepicker/internal/service"
	"github.com/jask/rangepicker/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $HOME/.config/rangepicker/config.toml)")
	startFlag := flag.String("start", "", "initial start date, YYYY-MM-DD")
	endFlag := flag.String("end", "", "initial end date, YYYY-MM-DD")
	presetFlag := flag.String("preset", "", "apply the named preset")
	printOnly := flag.Bool("print", false, "print the range and exit without the UI")
	reset := flag.Bool("reset", false, "forget saved ranges and the last selection")
	writeConfig := flag.Bool("write-config", false, "write the effective config, with default presets, and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *writeConfig {
		if len(cfg.Presets) == 0 {
			cfg.Presets = presets.Defaults()
		}
		path := *configPath
		if path == "" {
			path = os.Getenv("RANGEPICKER_CONFIG")
		}
		if err := config.Save(cfg, path); err != nil {
			log.Fatalf("write config: %v", err)
		}
		return
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if *reset {
		if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
			log.Fatalf("reset: %v", err)
		}
		fmt.Println("saved ranges cleared")
		return
	}

	session := service.NewSession(ctx, repository.NewSavedRangeRepo(db), repository.NewSelectionRepo(db), logger)

	defs := cfg.Presets
	if len(defs) == 0 {
		defs = presets.Defaults()
	}
	configured, err := presets.Resolve(calendar.Today(nil), defs)
	if err != nil {
		log.Fatalf("presets: %v", err)
	}
	all, err := session.LoadPresets(ctx, configured)
	if err != nil {
		log.Fatalf("presets: %v", err)
	}

	start, err := optionalDate(*startFlag, cfg.Picker.Start)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	end, err := optionalDate(*endFlag, cfg.Picker.End)
	if err != nil {
		log.Fatalf("end: %v", err)
	}
	initial, err := session.InitialRange(ctx, start, end)
	if err != nil {
		logger.Warn("last selection unavailable", "err", err)
	}

	rp, err := picker.New(picker.Options{Start: initial.Start, End: initial.End, Presets: all, Logger: logger})
	if err != nil {
		log.Fatalf("picker: %v", err)
	}
	defer rp.Close()
	rp.Subscribe(session)

	if *presetFlag != "" {
		if err := rp.ApplyPreset(*presetFlag); err != nil {
			log.Fatalf("preset: %v", err)
		}
	}

	if !*printOnly {
		m := tui.New(ctx, rp, tui.Options{
			DateFormat:  cfg.UI.DateFormat,
			ShowPresets: cfg.UI.ShowPresets,
			Saver:       session,
		})
		defer m.Close()
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}

	r := rp.CurrentRange()
	fmt.Printf("%s %s\n", r.Start, r.End)
}

// optionalDate parses the first non-empty value; both empty yields the zero
// Date.
func optionalDate(vals ...string) (calendar.Date, error) {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return calendar.ParseDate(v)
		}
	}
	return calendar.Date{}, nil
}

// newLogger writes to cfg.Path; with no path logging is discarded since the UI
// owns the terminal.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("level %q: %w", cfg.Level, err)
		}
	}
	if cfg.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
