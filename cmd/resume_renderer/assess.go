package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Check whether a document fits a page target",
	Long: `Runs the layout pipeline without producing a PDF and reports whether the
document fits the requested page count, listing every violated section contract.`,
	RunE: runAssess,
}

var (
	assessConfigPath string
	assessInput      string
	assessPages      int
	assessMargin     float64
	assessJSON       bool
	assessVerbose    bool
)

func init() {
	assessCmd.Flags().StringVar(&assessConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	assessCmd.Flags().StringVarP(&assessInput, "input", "i", "", "Path to resume JSON document")
	assessCmd.Flags().IntVarP(&assessPages, "pages", "p", 0, "Requested page count (1, 2, or 0 for unconstrained)")
	assessCmd.Flags().Float64Var(&assessMargin, "margin", 0, "Page margin in points (default 54)")
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Emit the assessment as JSON")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print detailed pipeline information")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if assessConfigPath != "" {
		loadedCfg, err := config.LoadConfig(assessConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = assessInput
	}
	if cmd.Flags().Changed("pages") {
		cfg.Pages = assessPages
	}
	if cmd.Flags().Changed("margin") {
		cfg.Margin = assessMargin
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = assessVerbose
	}

	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}

	doc, err := loadDocument(cfg.Input)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	assessment := eng.Assess(context.Background(), doc, types.RenderOptions{
		RequestedPageCount: cfg.Pages,
	})

	if assessJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(assessment); err != nil {
			return fmt.Errorf("failed to encode assessment: %w", err)
		}
	} else {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAssessment(assessment)
	}

	if !assessment.OK {
		// Non-zero exit so CI checks can gate on fit
		os.Exit(2)
	}
	return nil
}
