// # cmd/tracesim/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tracesim/internal/config"
	"tracesim/internal/extract"
	"tracesim/internal/shared/observability"
	"tracesim/internal/shared/util"
)

var (
	configPath  = flag.String("config", "./tracesim.toml", "Path to config file")
	watch       = flag.Bool("watch", false, "Keep running and recompare when either trace file changes")
	ui          = flag.Bool("ui", false, "Enable terminal UI mode (implies -watch)")
	extractPath = flag.String("extract", "", "Extract the stacktrace from a _report.jsonl file and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("tracesim v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stdout
	if *ui {
		// In UI mode, avoid stdout logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else {
			f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if err == nil {
				output = f
			} else {
				fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if *extractPath != "" {
		runExtract(*extractPath)
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: tracesim [flags] <trace-file-a> <trace-file-b>")
		os.Exit(1)
	}

	// Load config; the default path is optional, an explicit one is not.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath == "./tracesim.toml" && os.IsNotExist(err) {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	app := NewApp(cfg, flag.Arg(0), flag.Arg(1))

	results, err := app.CompareAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := app.GenerateOutputs(results); err != nil {
		slog.Error("failed to generate outputs", "error", err)
	}

	if !*ui {
		app.PrintResults(results)
	}

	if !*watch && !*ui {
		os.Exit(0)
	}

	// Watch mode
	app.StartMetrics()
	if err := app.StartWatcher(); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	if *ui {
		if err := app.RunUI(results); err != nil {
			slog.Error("failed to run UI", "error", err)
			os.Exit(1)
		}
	} else {
		// Block forever
		select {}
	}
}

func runExtract(reportPath string) {
	text, err := extract.FromReportFile(reportPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	outPath := extract.OutputPath(reportPath)
	if err := util.WriteStringWithDirs(outPath, text, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", outPath, err)
		os.Exit(1)
	}

	observability.ReportExtractionsTotal.Inc()
	slog.Info("stacktrace extracted", "input", reportPath, "output", outPath)
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "tracesim", "tracesim.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "tracesim", "tracesim.log")
	}

	return "tracesim.log"
}
