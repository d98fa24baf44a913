// Package main provides the entry point for the CareerGPT interview coach.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careergpt",
	Short: "CareerGPT interview coach",
	Long:  "CareerGPT parses resumes into structured profiles and runs mock interviews with questions grounded in the candidate's actual experience, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
