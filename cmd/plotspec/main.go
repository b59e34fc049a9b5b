// Package main provides the CLI entry point for plotspec.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plotspec-org/plotspec/dataset"
	"github.com/plotspec-org/plotspec/figfile"
	"github.com/plotspec-org/plotspec/figure"
	"github.com/plotspec-org/plotspec/page"
)

const version = "0.1.0"

var (
	dataPath string
	outPath  string
	format   string
	title    string
	verbose  bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotspec [figure-file]",
		Short: "Render Plotly chart specifications from figure descriptions",
		Long: `plotspec reads a figure description (JSON or YAML) and renders a
complete Plotly chart specification — the data array and layout object —
as a JSON document or a standalone HTML page.

Trace coordinates may be inline, or reference numeric columns of a CSV
or XLSX dataset via --data.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVar(&dataPath, "data", "", "CSV or XLSX dataset for column references")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, pretty, html")
	rootCmd.Flags().StringVar(&title, "title", "", "Override the figure title")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	figPath := args[0]

	f, err := figfile.Load(figPath)
	if err != nil {
		return fmt.Errorf("loading figure description: %w", err)
	}
	logger.Debug("Loaded figure description",
		zap.String("path", figPath),
		zap.Int("traces", len(f.Traces)),
		zap.Int("axes", len(f.Axes)))

	var table *dataset.Table
	if dataPath != "" {
		table, err = dataset.Load(dataPath)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		logger.Debug("Loaded dataset",
			zap.String("path", dataPath),
			zap.Strings("columns", table.Names()))
	}

	fig, err := f.Figure(table)
	if err != nil {
		return err
	}
	if title != "" {
		fig.Title = title
	}

	spec, err := figure.Render(fig)
	if err != nil {
		return err
	}
	logger.Info("Rendered chart specification",
		zap.String("variant", fig.Variant.String()),
		zap.Int("traces", len(spec.Data)))

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()
	}

	switch format {
	case "json", "pretty":
		raw, err := spec.JSON(format == "pretty")
		if err != nil {
			return err
		}
		if _, err := out.Write(append(raw, '\n')); err != nil {
			return err
		}
	case "html":
		p := page.New(spec, fig.Title)
		if err := p.WriteTo(out); err != nil {
			return err
		}
		logger.Debug("Embedded chart in HTML page", zap.String("container", p.ContainerID))
	default:
		return fmt.Errorf("invalid format %q (want json, pretty or html)", format)
	}

	if outPath != "" {
		logger.Info("Wrote output", zap.String("path", outPath), zap.String("format", format))
	}
	return nil
}
