// Package main provides the entry point for the resume tailor CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Resume tailoring pipeline",
	Long:  "Resume Tailor rewrites a plain-text resume for a specific job posting, renders it to a page-budgeted PDF, and assesses whether the posting is worth applying to.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
