package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"outageschedule/pkg/config"
)

// app carries the global flags and the configuration they resolve to
type app struct {
	cfgPath   string
	verbose   bool
	logPath   string
	logFormat string
	workers   int
	strict    bool
	raw       bool
	format    string
	input     string
	encoding  string
	header    bool
	columns   []string

	flags   *pflag.FlagSet
	cfg     *config.Config
	logFile io.Closer
}

func (a *app) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("outages", pflag.ContinueOnError)
	fs.StringVarP(&a.cfgPath, "config", "c", "", "path to TOML or YAML config file")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose (debug) logging")
	fs.StringVarP(&a.logPath, "log", "l", "", "path to log file. Default is stderr")
	fs.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	fs.IntVarP(&a.workers, "workers", "w", 0, "number of records parsed concurrently. Default is the number of CPUs")
	fs.BoolVar(&a.strict, "strict", false, "reject address text that is not fully parsed")
	fs.BoolVar(&a.raw, "raw", false, "do not transliterate and uppercase input text")
	fs.StringVarP(&a.format, "format", "f", "text", "output format: text or json")
	fs.StringVarP(&a.input, "input", "i", "csv", "schedule file format: csv, tsv or json")
	fs.StringVarP(&a.encoding, "encoding", "e", "utf-8", "character encoding of the schedule file")
	fs.BoolVar(&a.header, "header", false, "the schedule file starts with a header row")
	fs.StringSliceVar(&a.columns, "columns", nil, "header names of the date, time and address columns")
	a.flags = fs
	return fs
}

// configure loads the config file and lets explicitly set flags override it
func (a *app) configure() error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}

	changed := a.flags.Changed
	if changed("log") {
		cfg.Log.File = a.logPath
	}
	if changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if changed("workers") {
		cfg.Parser.Workers = a.workers
	}
	if changed("strict") {
		cfg.Parser.Strict = a.strict
	}
	if changed("raw") {
		cfg.Parser.Raw = a.raw
	}
	if changed("input") {
		cfg.Input.Format = a.input
	}
	if changed("encoding") {
		cfg.Input.Encoding = a.encoding
	}
	if changed("header") {
		cfg.Input.Header = a.header
	}
	if changed("columns") {
		cfg.Input.Columns = a.columns
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if a.format != "text" && a.format != "json" {
		return fmt.Errorf("unknown output format %q", a.format)
	}
	a.cfg = cfg
	return nil
}

func (a *app) setupLogging(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.Log.Level)); err != nil {
		return err
	}
	logCfg := slog.HandlerOptions{Level: level}

	output := stderr
	if a.cfg.Log.File != "" {
		f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", a.cfg.Log.File, err)
		}
		a.logFile = f
		output = f
	}

	var handler slog.Handler = slog.NewTextHandler(output, &logCfg)
	if a.cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(output, &logCfg)
	}
	slog.SetDefault(slog.New(handler).With(slog.String("run", uuid.NewString())))
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "outages",
		Short: "Parse street and house number lists from power outage schedules",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.configure(); err != nil {
				return err
			}
			return a.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logFile != nil {
				return a.logFile.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().AddFlagSet(a.flagSet())

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newScheduleCmd(a))
	rootCmd.AddCommand(newSummaryCmd(a))
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
