// Command ls-launchview rates upcoming rocket launches for naked-eye
// visibility from Bermuda.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-launchview/internal/config"
	"github.com/litescript/ls-launchview/internal/launch"
	"github.com/litescript/ls-launchview/internal/listing"
	"github.com/litescript/ls-launchview/internal/logging"
	"github.com/litescript/ls-launchview/internal/notify"
	"github.com/litescript/ls-launchview/internal/report"
	"github.com/litescript/ls-launchview/internal/state"
	"github.com/litescript/ls-launchview/internal/ui"
	"github.com/litescript/ls-launchview/internal/version"
	"github.com/litescript/ls-launchview/internal/visibility"
)

// CLI flags
var (
	configPath  string
	inputPath   string
	logLevel    string
	summaryMode bool
	jsonMode    bool
	nowMode     bool
	minFlag     string
	leadFlag    time.Duration
	notifyMode  bool
	watchFlag   time.Duration
	eventsMode  bool
	launchID    string
	atFlag      string
	showVersion bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&inputPath, "input", "", "Launch listing JSON file (use - for stdin)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&jsonMode, "json", false, "Print JSON export to stdout")
	flag.BoolVar(&nowMode, "now", false, "Single-line next-launch mode")
	flag.StringVar(&minFlag, "min", "", "Minimum likelihood to list (none, low, medium, high)")
	flag.DurationVar(&leadFlag, "lead", 0, "Alert lead time before launch (e.g., 30m)")
	flag.BoolVar(&notifyMode, "notify", false, "Print planned alerts")
	flag.DurationVar(&watchFlag, "watch", 0, "Re-read the listing at interval (e.g., 5m)")
	flag.BoolVar(&eventsMode, "events", false, "Show event log")
	flag.StringVar(&launchID, "launch", "", "Show card for a specific launch ID")
	flag.StringVar(&atFlag, "at", "", "Reference time for countdowns and alerts (RFC3339)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("ls-launchview v%s\n", version.Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	clock := time.Now
	if atFlag != "" {
		at, err := launch.ParseTime(atFlag)
		if err != nil {
			fatal(fmt.Errorf("-at: %w", err))
		}
		clock = func() time.Time { return at }
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))
	log := logger.With("main")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize components
	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.Input.Refresh
	stateMgr := state.NewManager(stateCfg)

	r := &runner{
		input: cfg.Input.Path,
		eval:  visibility.NewEvaluator(),
		state: stateMgr,
		log:   logger.With("eval"),
	}

	mode := cfg.Output.Mode
	if mode == config.OutputTUI && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Info("stdout is not a terminal, printing summary")
		mode = config.OutputSummary
	}

	if mode != config.OutputTUI {
		if err := runHeadless(ctx, r, cfg, mode, clock, log); err != nil {
			fatal(err)
		}
		return
	}

	if cfg.Input.Path == "-" {
		fatal(errors.New("the TUI needs a listing file, pass -input"))
	}

	// Create TUI model
	model := ui.New(stateMgr)

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Start evaluation loop in background
	go runEvalLoop(ctx, r, p, log)

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["input"] {
		cfg.Input.Path = inputPath
	}
	if set["log-level"] {
		cfg.Logging.Level = logLevel
	}
	if set["min"] {
		cfg.Output.MinLikelihood = minFlag
	}
	if set["lead"] {
		cfg.Notify.LeadTime = leadFlag
	}
	if notifyMode {
		cfg.Notify.Enabled = true
	}
	if set["watch"] {
		cfg.Input.Refresh = watchFlag
	}

	switch {
	case jsonMode:
		cfg.Output.Mode = config.OutputJSON
	case nowMode:
		cfg.Output.Mode = config.OutputNow
	case summaryMode:
		cfg.Output.Mode = config.OutputSummary
	case cfg.Output.Mode == config.OutputTUI && (eventsMode || launchID != "" || notifyMode):
		cfg.Output.Mode = config.OutputSummary
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// runner loads the listing and evaluates it into the state manager.
type runner struct {
	input string
	eval  *visibility.Evaluator
	state *state.Manager
	log   *logging.Logger
}

func (r *runner) evaluate() error {
	start := time.Now()
	r.log.Debug("Loading listing from %s", r.input)

	records, err := listing.Load(r.input)
	if records == nil && err != nil {
		r.state.Update(nil, time.Since(start), err)
		return err
	}

	outcomes := r.eval.EvaluateAll(records)
	// Skipped entries count as failed evaluations.
	for _, entryErr := range listing.EntryErrors(err) {
		outcomes = append(outcomes, visibility.Outcome{Err: entryErr})
	}
	r.state.Update(outcomes, time.Since(start), nil)

	snap := r.state.Snapshot()
	r.log.Info("Evaluated %d launches (%d skipped) in %v",
		len(snap.Launches), len(snap.Failures), snap.EvalDuration.Round(time.Microsecond))
	for _, f := range snap.Failures {
		r.log.Debug("Skipped: %v", f)
	}
	return nil
}

func runEvalLoop(ctx context.Context, r *runner, p *tea.Program, log *logging.Logger) {
	doEval(r, p, log)

	ticker := time.NewTicker(r.state.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Evaluation loop shutting down")
			p.Quit()
			return
		case <-ticker.C:
			doEval(r, p, log)
		}
	}
}

func doEval(r *runner, p *tea.Program, log *logging.Logger) {
	if err := r.evaluate(); err != nil {
		log.Error("Evaluation failed: %v", err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}
	p.Send(ui.DataUpdateMsg{Snapshot: r.state.Snapshot()})
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, r *runner, cfg *config.Config, mode string, clock func() time.Time, log *logging.Logger) error {
	policy := notify.Policy{
		MinLikelihood: cfg.NotifyMinLikelihood(),
		LeadTime:      cfg.Notify.LeadTime,
	}

	outputOnce := func() error {
		if err := r.evaluate(); err != nil {
			return err
		}
		snap := r.state.Snapshot()
		now := clock()

		// Launch card mode
		if launchID != "" {
			a, ok := r.state.Launch(launchID)
			if !ok {
				return fmt.Errorf("launch %q not found", launchID)
			}
			report.WriteCard(os.Stdout, a)
			return nil
		}

		switch mode {
		case config.OutputJSON:
			if err := report.ExportSnapshot(snap).WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		case config.OutputNow:
			report.WriteNow(os.Stdout, snap.Launches, now)
		default:
			report.WriteSummaryTable(os.Stdout, snap, cfg.MinLikelihood())
		}

		if cfg.Notify.Enabled {
			fmt.Println()
			report.WriteAlerts(os.Stdout, notify.Plan(snap.Launches, now, policy))
		}

		if eventsMode {
			fmt.Println()
			report.WriteEvents(os.Stdout, snap.Events, 10)
		}
		return nil
	}

	// Single run
	if watchFlag == 0 {
		return outputOnce()
	}

	if r.input == "-" {
		return errors.New("-watch cannot re-read standard input, pass -input")
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(r.state.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Watch loop shutting down")
			return nil
		case <-ticker.C:
			if mode != config.OutputNow {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
