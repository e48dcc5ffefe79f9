// # cmd/tracesim/app.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"tracesim/internal/config"
	"tracesim/internal/errors"
	"tracesim/internal/output"
	"tracesim/internal/parser"
	"tracesim/internal/shared/observability"
	"tracesim/internal/shared/util"
	"tracesim/internal/similarity"
	"tracesim/internal/watcher"
)

type App struct {
	Config *config.Config
	PathA  string
	PathB  string

	teaProgram *tea.Program
	watcher    *watcher.Watcher
	limiter    *util.Limiter
	metricsSrv *observability.Server

	// compareMu serializes recomparisons triggered by the watcher.
	compareMu sync.Mutex
}

func NewApp(cfg *config.Config, pathA, pathB string) *App {
	return &App{
		Config:  cfg,
		PathA:   pathA,
		PathB:   pathB,
		limiter: util.NewLimiter(cfg.Watch.RecomparePerSec, cfg.Watch.RecompareBurst),
	}
}

// CompareAll reads both trace files, splits each into traces, pairs them up
// positionally and scores every pair. Files without a separator produce
// exactly one pair.
func (a *App) CompareAll() ([]similarity.Result, error) {
	a.compareMu.Lock()
	defer a.compareMu.Unlock()

	contentA, err := readTraceFile(a.PathA)
	if err != nil {
		return nil, err
	}
	contentB, err := readTraceFile(a.PathB)
	if err != nil {
		return nil, err
	}

	tracesA := loadTraces(contentA)
	tracesB := loadTraces(contentB)

	pairs := len(tracesA)
	if len(tracesB) < pairs {
		pairs = len(tracesB)
	}

	results := make([]similarity.Result, 0, pairs)
	for i := 0; i < pairs; i++ {
		timer := prometheus.NewTimer(observability.ComparisonDuration)
		r := similarity.Compare(tracesA[i], tracesB[i])
		timer.ObserveDuration()

		observability.ComparisonsTotal.Inc()
		observability.FramesExtractedTotal.WithLabelValues("a").Add(float64(r.ChainsA.FrameCount()))
		observability.FramesExtractedTotal.WithLabelValues("b").Add(float64(r.ChainsB.FrameCount()))
		observability.LastSimilarityPercent.WithLabelValues(fmt.Sprintf("%d", i+1)).Set(r.Percent)

		results = append(results, r)
	}

	// Inputs with content but not a single parseable frame on either side
	// are garbage, not traces. Genuinely empty inputs stay valid and score
	// by the empty-trace convention.
	if totalFrames(results) == 0 &&
		(strings.TrimSpace(contentA) != "" || strings.TrimSpace(contentB) != "") {
		return nil, errors.New(errors.CodeValidationError, "no stack frames found in either input")
	}

	return results, nil
}

func (a *App) PrintResults(results []similarity.Result) {
	rule := strings.Repeat("=", 80)
	for i, r := range results {
		if i > 0 {
			fmt.Println(rule)
		}
		if len(results) > 1 {
			fmt.Printf("Pair %d\n\n", i+1)
		}
		fmt.Print(output.Listing(r))
	}
}

func (a *App) GenerateOutputs(results []similarity.Result) error {
	if a.Config.Output.TSV != "" {
		gen := output.NewTSVGenerator(results)
		content, err := gen.Generate()
		if err != nil {
			return err
		}
		if err := util.WriteStringWithDirs(a.Config.Output.TSV, content, 0o644); err != nil {
			return fmt.Errorf("failed to write TSV output: %w", err)
		}
	}

	if a.Config.Output.Markdown != "" {
		gen := output.NewMarkdownGenerator()
		content, err := gen.Generate(
			output.MarkdownReportData{
				TraceFileA: a.PathA,
				TraceFileB: a.PathB,
				Pairs:      results,
			},
			output.MarkdownReportOptions{
				Version:   VERSION,
				Threshold: a.Config.Similarity.Threshold,
			},
		)
		if err != nil {
			return err
		}
		if err := util.WriteStringWithDirs(a.Config.Output.Markdown, content, 0o644); err != nil {
			return fmt.Errorf("failed to write markdown report: %w", err)
		}
	}

	return nil
}

func (a *App) StartWatcher() error {
	w, err := watcher.NewWatcher(a.Config.Watch.Debounce, a.Config.Exclude.Files, a.HandleChanges)
	if err != nil {
		return err
	}
	a.watcher = w
	return w.WatchFiles([]string{a.PathA, a.PathB})
}

// HandleChanges recompares after the watcher reports that either trace
// file changed.
func (a *App) HandleChanges(paths []string) {
	observability.WatcherEventsTotal.Inc()

	if !a.limiter.Allow(1) {
		observability.RecomparesThrottledTotal.Inc()
		slog.Debug("recompare throttled", "paths", paths)
		return
	}

	slog.Info("trace files changed, recomparing", "paths", paths)

	results, err := a.CompareAll()
	if err != nil {
		slog.Error("recompare failed", "error", err)
		return
	}

	if err := a.GenerateOutputs(results); err != nil {
		slog.Error("failed to generate outputs", "error", err)
	}

	if a.teaProgram != nil {
		a.teaProgram.Send(updateMsg{results: results, when: time.Now()})
	} else {
		a.PrintResults(results)
	}
}

func (a *App) StartMetrics() {
	if a.Config.Metrics.Addr == "" {
		return
	}
	a.metricsSrv = observability.NewServer(a.Config.Metrics.Addr)
	if err := a.metricsSrv.Start(context.Background()); err != nil {
		slog.Error("failed to start metrics server", "error", err)
	}
}

func (a *App) RunUI(results []similarity.Result) error {
	m := initialModel(a.PathA, a.PathB, a.Config.Similarity.Threshold)
	a.teaProgram = tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		a.teaProgram.Send(updateMsg{results: results, when: time.Now()})
	}()

	_, err := a.teaProgram.Run()
	return err
}

func readTraceFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := errors.Wrap(err, errors.CodeInputUnavailable, "cannot read trace file")
		return "", errors.AddContext(e, errors.CtxPath, path)
	}
	return string(data), nil
}

// loadTraces splits file content into trace segments. A trailing blank
// segment after the final separator is dropped so that "trace, separator,
// EOF" still means one trace.
func loadTraces(content string) []string {
	segments := parser.SplitTraces(content)
	if len(segments) > 1 && strings.TrimSpace(segments[len(segments)-1]) == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

func totalFrames(results []similarity.Result) int {
	total := 0
	for _, r := range results {
		total += r.FrameCount()
	}
	return total
}
