// Package main provides the CLI entry point for semchart-go.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/semchart-go/internal/config"
	"github.com/ukaji3/semchart-go/internal/logging"
	"github.com/ukaji3/semchart-go/pkg/semchart"
	"github.com/ukaji3/semchart-go/pkg/semchart/chart"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	"github.com/ukaji3/semchart-go/pkg/semchart/output"
	"github.com/ukaji3/semchart-go/pkg/semchart/summary"
)

const couldNotParse = "could not parse %s: ensure the first column holds ids and the header row holds SEM labels"

var (
	configPath string
	envFile    string
	sheetName  string
	encoding   string
	delimiter  string
	cellRange  string
	logLevel   string

	exportPath string
	pretty     bool
	format     string
	chartPath  string

	palette   string
	title     string
	highlight string
	smooth    bool
	points    bool
	spanGaps  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "semchart",
		Short: "Chart per-semester series from spreadsheets",
		Long: `semchart reads a CSV or xlsx file, finds the header row and the
semester columns, and extracts one numeric series per row id.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML configuration file")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with SEMCHART_* settings")
	pf.StringVar(&sheetName, "sheet", "", "Workbook sheet to read (default: first sheet)")
	pf.StringVar(&encoding, "encoding", "", "CSV encoding: utf-8, latin1, windows-1252")
	pf.StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default: ,)")
	pf.StringVar(&cellRange, "range", "", "Cell range to read, e.g. B2:F30, or print-area")
	pf.StringVar(&logLevel, "log-level", "", "Log level: error, warn, info, debug")

	rootCmd.AddCommand(newExportCmd(), newChartCmd(), newSummaryCmd(), newSheetsCmd())
	return rootCmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input]",
		Short: "Export extracted series as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	cmd.Flags().StringVarP(&exportPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	return cmd
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [input]",
		Short: "Render extracted series as an HTML line chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	cmd.Flags().StringVarP(&chartPath, "output", "o", "semester_chart.html", "Output HTML file")
	cmd.Flags().StringVar(&palette, "palette", "", "Palette name (Default, Pastel, Neon or one from --config)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().StringVar(&highlight, "highlight", "", "Emphasize series whose id contains this text")
	cmd.Flags().BoolVar(&smooth, "smooth", true, "Draw smoothed lines")
	cmd.Flags().BoolVar(&points, "points", true, "Draw point markers")
	cmd.Flags().BoolVar(&spanGaps, "span-gaps", false, "Connect lines across missing values")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [input]",
		Short: "Print per-row statistics of the extracted series",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := semchart.SheetNames(args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	data, err := output.Encode(doc, format, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if exportPath == "" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := output.WriteFile(exportPath, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	doc, cfg, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.Chart.Palette = palette
	}
	if flags.Changed("title") {
		cfg.Chart.Title = title
	}
	if flags.Changed("smooth") {
		cfg.Chart.Smooth = smooth
	}
	if flags.Changed("points") {
		cfg.Chart.Points = points
	}
	if flags.Changed("span-gaps") {
		cfg.Chart.SpanGaps = spanGaps
	}

	style, err := cfg.Style()
	if err != nil {
		return err
	}
	style.Highlight = highlight

	var buf bytes.Buffer
	if err := chart.RenderHTML(&buf, doc.SeriesSet, style); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if err := output.WriteFile(chartPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", chartPath)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	summaries, err := summary.Summarize(doc.SeriesSet)
	if err != nil {
		return err
	}
	return summary.WriteTable(cmd.OutOrStdout(), summaries)
}

// loadDocument resolves configuration and loads the input file. An empty
// extraction is reported as a parse failure.
func loadDocument(cmd *cobra.Command, path string) (*models.Document, config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = sheetName
	}
	if flags.Changed("encoding") {
		cfg.Encoding = encoding
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiter
	}
	if flags.Changed("range") {
		cfg.Range = cellRange
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, cfg, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	opts, err := cfg.LoadOptions()
	if err != nil {
		return nil, cfg, err
	}
	opts.Logger = logger

	doc, err := semchart.Load(path, opts)
	switch {
	case errors.Is(err, semchart.ErrFileNotFound):
		return nil, cfg, fmt.Errorf("file not found: %s", path)
	case errors.Is(err, semchart.ErrEmptyResult):
		return nil, cfg, fmt.Errorf(couldNotParse, path)
	case err != nil:
		return nil, cfg, err
	}

	logger.Info("loaded %s: %d rows, %d semesters", doc.Source, len(doc.Entities), len(doc.Labels))
	return doc, cfg, nil
}
