package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to PDF",
	Long: `Lays out a structured resume JSON document and writes the paginated PDF.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRender,
}

var (
	renderConfigPath  string
	renderInput       string
	renderOutput      string
	renderPages       int
	renderMargin      float64
	renderFontFamily  string
	renderFontRegular string
	renderFontBold    string
	renderVerbose     bool
)

func init() {
	// Config file flag (processed first)
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume JSON document")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Path to write the rendered PDF")
	renderCmd.Flags().IntVarP(&renderPages, "pages", "p", 0, "Requested page count (1, 2, or 0 for unconstrained)")
	renderCmd.Flags().Float64Var(&renderMargin, "margin", 0, "Page margin in points (default 54)")
	renderCmd.Flags().StringVar(&renderFontFamily, "font-family", "", "Preferred font family name")
	renderCmd.Flags().StringVar(&renderFontRegular, "font-regular", "", "Path to regular-weight TTF")
	renderCmd.Flags().StringVar(&renderFontBold, "font-bold", "", "Path to bold-weight TTF")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed pipeline information")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}
	if cfg.Output == "" {
		base := filepath.Base(cfg.Input)
		cfg.Output = base[:len(base)-len(filepath.Ext(base))] + ".pdf"
	}

	doc, err := loadDocument(cfg.Input)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintDocument(doc)
	}

	opts := types.RenderOptions{
		RequestedPageCount: cfg.Pages,
		Filename:           filepath.Base(cfg.Output),
	}
	result, err := eng.Render(context.Background(), doc, opts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := os.WriteFile(cfg.Output, result.Bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	if cfg.Verbose {
		printer.PrintRenderResult(result)
	} else {
		fmt.Printf("Wrote %s (%s, %d pages)\n", cfg.Output, result.ModeUsed, result.PageCount)
	}
	return nil
}

// renderConfig loads the optional config file and applies CLI overrides,
// with flags taking priority over file values.
func renderConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if renderConfigPath != "" {
		loadedCfg, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = renderInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = renderOutput
	}
	if cmd.Flags().Changed("pages") {
		cfg.Pages = renderPages
	}
	if cmd.Flags().Changed("margin") {
		cfg.Margin = renderMargin
	}
	if cmd.Flags().Changed("font-family") {
		cfg.FontFamily = renderFontFamily
	}
	if cmd.Flags().Changed("font-regular") {
		cfg.FontRegular = renderFontRegular
	}
	if cmd.Flags().Changed("font-bold") {
		cfg.FontBold = renderFontBold
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = renderVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	return cfg, nil
}
