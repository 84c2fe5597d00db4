package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/programme-lv/exsubs/internal/aggregate"
	"github.com/programme-lv/exsubs/internal/environment"
	"github.com/programme-lv/exsubs/internal/exercism"
	"github.com/programme-lv/exsubs/internal/logging"
	"github.com/programme-lv/exsubs/internal/report"
	"github.com/urfave/cli/v3"
)

func main() {
	err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args)
	if err == nil {
		return
	}

	code := 1
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(code)
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "exsubs",
		Usage:     "count current and outdated community solutions of exercism exercises",
		ArgsUsage: "<track> <exercise>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "current",
				Aliases: []string{"c"},
				Usage:   "report the number of current submissions; with --outdated also the delta",
			},
			&cli.BoolFlag{
				Name:    "outdated",
				Aliases: []string{"O"},
				Usage:   "report the number of outdated submissions; with --current also the delta",
			},
			&cli.BoolFlag{
				Name:    "no-progress",
				Aliases: []string{"np"},
				Usage:   "hide progress bars and print compact JSON",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "also write the report to `PATH`, overwriting it",
			},
			&cli.StringFlag{
				Name:    "output-type",
				Aliases: []string{"ot"},
				Value:   report.FormatJSON,
				Usage:   "report format; only json produces output",
			},
			&cli.BoolFlag{
				Name:    "sum",
				Aliases: []string{"s"},
				Usage:   "append the sum of every count over all exercises",
			},
			&cli.StringFlag{
				Name:  "skip",
				Usage: "exercises to leave out, joined by the configured separator (',' unless set in config)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "base URL of the exercism API",
			},
		},
		// exit codes are decided in main
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, stdout, stderr)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	if cmd.Args().Len() != 2 {
		return cli.Exit(fmt.Sprintf("expected <track> and <exercise> arguments, got %d", cmd.Args().Len()), 2)
	}
	track := cmd.Args().Get(0)
	exercises := cmd.Args().Get(1)

	cfg, err := environment.ReadConfig()
	if err != nil {
		return err
	}
	if v := cmd.String("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}

	logger := logging.New(stderr, cfg.LogLevel).With("run", uuid.NewString())
	logger.Debug("starting", "track", track, "exercises", exercises, "api_url", cfg.APIURL)

	client := exercism.New(cfg.APIURL,
		exercism.WithToken(cfg.Token),
		exercism.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		exercism.WithLogger(logger),
	)

	showProgress := !cmd.Bool("no-progress")
	opts := []aggregate.Option{
		aggregate.WithSeparator(cfg.Separator),
		aggregate.WithLogger(logger),
	}
	if showProgress {
		opts = append(opts, aggregate.WithProgress(stderr))
	}

	rep, err := aggregate.New(client, opts...).BuildReport(ctx, aggregate.Request{
		Track:     track,
		Exercises: exercises,
		Skip:      cmd.String("skip"),
		Current:   cmd.Bool("current"),
		Outdated:  cmd.Bool("outdated"),
		Sum:       cmd.Bool("sum"),
	})
	if err != nil {
		return err
	}

	return report.New(stdout, logger).Emit(rep, report.Options{
		Format:     cmd.String("output-type"),
		Pretty:     showProgress,
		OutputPath: cmd.String("output"),
	})
}
