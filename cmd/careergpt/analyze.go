package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/careergpt/internal/extraction"
	"github.com/jonathan/careergpt/internal/ingestion"
	"github.com/jonathan/careergpt/internal/observability"
	"github.com/jonathan/careergpt/internal/roles"
	"github.com/jonathan/careergpt/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Parse resume files into structured profiles",
	Long:  "Decode one or more resume files (PDF, DOCX, HTML, or plain text), extract a structured profile from each, and infer the candidate's target role.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAnalyze,
}

var (
	analyzeURL  string
	analyzeJSON bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "Fetch a resume from a URL instead of reading files")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit machine-readable JSON instead of formatted boxes")
	rootCmd.AddCommand(analyzeCmd)
}

// analysis pairs one input with its extraction result.
type analysis struct {
	Source    string               `json:"source"`
	Profile   *types.ResumeProfile `json:"profile"`
	Inference types.RoleInference  `json:"role_inference"`
	Summary   string               `json:"summary"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	if analyzeURL == "" && len(args) == 0 {
		return fmt.Errorf("provide resume files or --url")
	}
	if analyzeURL != "" && len(args) > 0 {
		return fmt.Errorf("files and --url are mutually exclusive")
	}

	ctx := context.Background()

	if analyzeURL != "" {
		resume, err := ingestion.FetchResume(ctx, analyzeURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch resume: %w", err)
		}
		return emitAnalyses([]analysis{analyzeText(analyzeURL, resume.Text)})
	}

	// Decode and analyze files concurrently, keeping input order
	results := make([]analysis, len(args))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range args {
		g.Go(func() error {
			text, err := ingestion.DecodeFile(path)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}
			results[i] = analyzeText(path, ingestion.CleanText(text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emitAnalyses(results)
}

func analyzeText(source, text string) analysis {
	profile := extraction.Extract(text)
	return analysis{
		Source:    source,
		Profile:   profile,
		Inference: roles.Infer(profile),
		Summary:   extraction.Summary(profile),
	}
}

func emitAnalyses(results []analysis) error {
	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, result := range results {
		fmt.Printf("\n%s\n", result.Source)
		printer.PrintResumeProfile(result.Profile)
		printer.PrintRoleInference(result.Inference)
		fmt.Println(result.Summary)
	}
	return nil
}
