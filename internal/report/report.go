// Package report writes aggregated reports to the terminal and to files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/programme-lv/exsubs/api"
)

const FormatJSON = "json"

type Options struct {
	// Format selects the serialization. Only FormatJSON produces output;
	// other values are accepted and emit nothing.
	Format string
	// Pretty prints indented, coloured JSON instead of a compact line.
	Pretty bool
	// OutputPath, when set, receives the compact JSON as well. An existing
	// file is overwritten.
	OutputPath string
}

type Reporter struct {
	out    io.Writer
	logger *slog.Logger
}

func New(out io.Writer, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reporter{out: out, logger: logger}
}

func (r *Reporter) Emit(rep *api.Report, opts Options) error {
	if opts.Format != FormatJSON {
		r.logger.Warn("unsupported output type, nothing emitted", "output_type", opts.Format)
		return nil
	}

	compact, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	printed := append(compact, '\n')
	if opts.Pretty {
		printed, err = Highlight(compact)
		if err != nil {
			return err
		}
		printed = append(printed, '\n')
	}
	if _, err := r.out.Write(printed); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, compact, 0644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", opts.OutputPath, err)
		}
		r.logger.Info("report written", "path", opts.OutputPath, "bytes", len(compact))
	}
	return nil
}
