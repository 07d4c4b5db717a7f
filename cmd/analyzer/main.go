package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traffic-analyzer/internal/app"
	"traffic-analyzer/internal/filters"
	"traffic-analyzer/internal/shared/configs"
	"traffic-analyzer/internal/shared/svcerrors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional: .env only feeds TRAFFIC_ANALYZER_* variables.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return svcerrors.ExitCodeOf(err)
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		cfgPath string
		method  string
		status  string
		start   int64
		end     int64
		asOf    int64
	)

	root := &cobra.Command{
		Use:   "traffic-analyzer LOGFILE",
		Short: "Summarize web server access logs",
		Long: `Parse an access log, filter its records and print traffic statistics.

Each log line has the form:

  ip timestamp method path status bytes [user-agent]

with fields separated by whitespace and the timestamp in Unix seconds.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return errInvalidUsage(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}

			application, err := app.New(cfg, stdout)
			if err != nil {
				return err
			}

			opts := app.RunOptions{
				LogFile: args[0],
				Filter:  filters.FilterArgs{Method: method, Status: status},
			}
			if cmd.Flags().Changed("start") {
				opts.Filter.Start = &start
			}
			if cmd.Flags().Changed("end") {
				opts.Filter.End = &end
			}
			if cmd.Flags().Changed("as-of") {
				opts.AsOf = time.Unix(asOf, 0)
			}

			return application.Run(cmd.Context(), opts)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errInvalidUsage(err)
	})

	flags := root.Flags()
	flags.StringVar(&method, "method", "", "only count requests with this method (GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS)")
	flags.StringVar(&status, "status", "", "only count this status code or inclusive range, e.g. 404 or 400-499")
	flags.Int64Var(&start, "start", 0, "only count requests at or after this Unix timestamp")
	flags.Int64Var(&end, "end", 0, "only count requests at or before this Unix timestamp")
	flags.Int64Var(&asOf, "as-of", 0, "Unix timestamp the last-24h count is relative to (default now)")

	flags.StringVar(&cfgPath, "config", "", "YAML config file path")
	flags.Int("top", configs.DefaultReportTop, "number of entries in top IP and path rankings")
	flags.String("format", configs.DefaultReportFormat, "report format: text, json or yaml")
	flags.String("out", "", "write the report to this file instead of stdout")
	flags.Int("max-failure-samples", configs.DefaultMaxFailureSamples, "skipped lines echoed in the report")
	flags.String("log-level", configs.DefaultLogLevel, "log level written to stderr")
	flags.String("log-format", configs.DefaultLogFormat, "log format: json or console")
	flags.String("metrics-textfile", "", "write prometheus metrics to this file after the run")

	return root
}
