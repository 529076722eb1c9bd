// Package main provides the entry point for the resume renderer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_renderer",
	Short: "Deterministic resume PDF renderer",
	Long:  "Resume Renderer lays out structured resume documents into measured, paginated PDFs, compressing content to fit one-page or two-page targets.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
