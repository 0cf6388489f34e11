// Package main is the entry point for the confirm demo application.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/billie-coop/confirm/dialog"
	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
	"github.com/billie-coop/confirm/internal/config"
	"github.com/billie-coop/confirm/internal/logging"
	"github.com/billie-coop/confirm/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/joho/godotenv"
	"github.com/xhd2015/less-gen/flags"
)

const help = `
confirm-demo - show confirmation dialogs in the terminal

Usage:
  confirm-demo [options]
  confirm-demo estimate [options] <message>
  confirm-demo config set <key> <value>

Options:
  --project <dir>   Directory holding .confirm/ (default: current directory)
  --theme <name>    Theme to use (confirm, dark)
  --mode <mode>     Default content mode (text_with_newlines, text, preformatted, html)
  --title <title>   Title used by estimate
  --debug-log <f>   Write debug logs to f
  -h,--help         Show this help message

Examples:
  confirm-demo --theme dark
  confirm-demo estimate --mode html "<p>Delete <b>3</b> files?</p>"
  confirm-demo config set sizing.max_height 30
`

func main() {
	// $VAR references in the config file may come from .env
	_ = godotenv.Load()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type options struct {
	project  string
	theme    string
	mode     string
	title    string
	debugLog string
}

func parseOptions(args []string) (options, []string, error) {
	var opts options
	rest, err := flags.String("--project", &opts.project).
		String("--theme", &opts.theme).
		String("--mode", &opts.mode).
		String("--title", &opts.title).
		String("--debug-log", &opts.debugLog).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return opts, nil, err
	}
	if opts.project == "" {
		if opts.project, err = os.Getwd(); err != nil {
			return opts, nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	return opts, rest, nil
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "estimate":
			return handleEstimate(args[1:])
		case "config":
			return handleConfig(args[1:])
		}
	}

	opts, rest, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(rest, " "))
	}

	cfgManager, cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfgManager, cfg, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	themes := styles.NewManager(cfg.Theme)
	if err := themes.SetTheme(cfg.Theme); err != nil {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme)
	}
	styles.SetDefaultManager(themes)

	factory, err := dialog.NewDefaultFactory(cfg.Sizing, dialog.WithLogger(logger))
	if err != nil {
		return err
	}
	restore := dialog.DefaultScope().Swap(factory)
	defer restore()

	p := tea.NewProgram(newApp(dialog.DefaultScope(), cfg.Mode(), logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

func loadConfig(opts options) (*config.Manager, *config.Config, error) {
	m := config.NewManager(opts.project)
	if err := m.Load(); err != nil {
		return nil, nil, err
	}
	cfg := m.Get()
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.mode != "" {
		if _, ok := content.ParseMode(opts.mode); !ok {
			return nil, nil, fmt.Errorf("unknown content mode: %s", opts.mode)
		}
		cfg.ContentMode = opts.mode
	}
	if opts.debugLog != "" {
		cfg.LogFile = opts.debugLog
		cfg.Debug = true
	}
	return m, cfg, nil
}

func openLogger(m *config.Manager, cfg *config.Config, opts options) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	path := cfg.LogFile
	if opts.debugLog == "" && !filepath.IsAbs(path) {
		path = filepath.Join(m.Dir(), path)
	}
	logger, f, err := logging.OpenFile(path, level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

func handleEstimate(args []string) error {
	opts, rest, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("estimate requires exactly one message argument")
	}

	_, cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cfgSizing, err := sizing.NewConfig(cfg.Sizing)
	if err != nil {
		return err
	}

	size := sizing.Estimate(rest[0], opts.title, cfg.Mode(), cfgSizing)
	fmt.Println(size.String())
	return nil
}

func handleConfig(args []string) error {
	if len(args) != 3 || args[0] != "set" {
		return fmt.Errorf("usage: confirm-demo config set <key> <value>")
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	m := config.NewManager(wd)
	if err := m.Load(); err != nil {
		return err
	}
	if err := m.Set(args[1], args[2]); err != nil {
		return err
	}
	fmt.Printf("%s = %s (%s)\n", args[1], args[2], m.Path())
	return nil
}
