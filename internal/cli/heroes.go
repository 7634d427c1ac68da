package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yildizm/heroboard/internal/formatter"
	"github.com/yildizm/heroboard/internal/heroapi"
	"github.com/yildizm/heroboard/internal/intent"
	"github.com/yildizm/heroboard/internal/logger"
	"github.com/yildizm/heroboard/internal/monitor"
	"github.com/yildizm/heroboard/internal/runtime"
	"github.com/yildizm/heroboard/internal/store"
	"github.com/yildizm/heroboard/internal/view"
)

var (
	headlessTimeout    time.Duration
	headlessOutputFile string
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the hero list",
		Long: `Fetch the hero list and print it in the configured output format.

Examples:
  heroboard list
  heroboard list -o json
  heroboard list -o csv --output-file heroes.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd, GetGlobalConfig().UI.RoutePrefix)
		},
	}
	addHeadlessFlags(cmd)
	return cmd
}

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <hero-id>",
		Short: "Print a hero's ability profile",
		Long: `Fetch the hero list and one hero's ability profile and print both in
the configured output format.

Examples:
  heroboard profile 1
  heroboard profile 1 -o markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("hero id must not be empty")
			}
			return runHeadless(cmd, view.RouteFor(GetGlobalConfig().UI.RoutePrefix, args[0]))
		},
	}
	addHeadlessFlags(cmd)
	return cmd
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&headlessTimeout, "timeout", 30*time.Second, "overall time limit")
	cmd.Flags().StringVar(&headlessOutputFile, "output-file", "", "save output to file instead of stdout")
}

// runHeadless opens path without a terminal page, waits for every fetch it
// triggers to settle and prints the result
func runHeadless(cmd *cobra.Command, path string) error {
	cfg := GetGlobalConfig()

	log, closeLog, err := newLogger("cli", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
		_ = closeLog()
	}()

	out := cmd.OutOrStdout()
	if headlessOutputFile != "" {
		f, err := os.Create(headlessOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	f, err := formatter.New(getOutputFormat(), useColor(out))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, headlessTimeout)
	defer cancel()

	opts := newRuntimeOptions(cfg, log)
	metrics := monitor.NewCollector(requestLabel(opts.Endpoints))
	opts.Gateway = metrics.Instrument(opts.Gateway)

	loop := runtime.NewLoop(ctx, opts)
	session := loop.Session()

	// the dismiss timer may clear an error before the other fetch settles
	var failure string
	session.OnApply(func(in intent.Intent, s store.State) {
		if failure == "" && intent.IsError(in) {
			failure = s.Error
		}
	})

	start := time.Now()
	st, err := loop.Run(ctx, path, settled)
	if err != nil {
		return fmt.Errorf("heroes did not load: %w", err)
	}

	logStats(log, session, metrics, time.Since(start))

	if failure != "" {
		return fmt.Errorf("failed to load heroes: %s", failure)
	}
	if st.HasError() {
		return fmt.Errorf("failed to load heroes: %s", st.Error)
	}

	return writeReport(out, f, formatter.NewReport(st, session.View()))
}

// settled stops the loop once no fetch is outstanding
func settled(s store.State) bool {
	return !s.Loading()
}

func writeReport(w io.Writer, f formatter.Formatter, report *formatter.Report) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// requestLabel groups gateway calls by the request kind that issued them
func requestLabel(endpoints heroapi.Endpoints) monitor.Labeler {
	list := endpoints.ListURL()
	return func(rawURL string) string {
		if rawURL == list {
			return intent.KindLoadList.String()
		}
		return intent.KindLoadProfile.String()
	}
}

// logStats reports per-kind effect counters and request timings in verbose mode
func logStats(log *logger.Logger, session *runtime.Session, metrics *monitor.Collector, elapsed time.Duration) {
	for _, kind := range []intent.Kind{intent.KindLoadList, intent.KindLoadProfile} {
		stats := session.Stats(kind)
		if stats.Started == 0 {
			continue
		}
		log.InfoWithFields("%s finished", []logger.Field{
			logger.F("started", stats.Started),
			logger.F("applied", stats.Applied),
			logger.F("dropped", stats.Dropped),
		}, kind)
	}
	for _, op := range metrics.Snapshot() {
		log.InfoWithFields("%s requests", []logger.Field{
			logger.F("count", op.Count),
			logger.F("errors", op.ErrorCount),
			logger.F("avg", op.AvgTime().String()),
			logger.F("max", time.Duration(op.MaxTime).String()),
		}, op.Operation)
	}
	log.InfoWithFields("done", []logger.Field{logger.Duration(elapsed)})
}
