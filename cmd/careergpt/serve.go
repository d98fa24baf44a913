package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/careergpt/internal/config"
	"github.com/jonathan/careergpt/internal/observability"
	"github.com/jonathan/careergpt/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume parsing and mock interview endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print resolved settings at startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return err
	}
	final := cfg.MergeWithDefaults(config.Config{Port: servePort})
	if serveVerbose {
		final.Verbose = true
	}
	if err := final.Validate(); err != nil {
		return err
	}

	if final.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "Warning: DATABASE_URL not set, transcripts will not be persisted")
	}
	if final.GeminiAPIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, using rule-based interviewer only")
	}

	if final.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSettings(settingsFor(&final))
	}

	srv, err := server.New(server.Config{
		Port:           final.Port,
		DatabaseURL:    final.DatabaseURL,
		GeminiAPIKey:   final.GeminiAPIKey,
		BanksPath:      final.BanksPath,
		FetchTimeout:   time.Duration(final.FetchTimeoutSeconds) * time.Second,
		RateLimitRPS:   final.RateLimitRPS,
		RateLimitBurst: final.RateLimitBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// settingsFor lists the resolved configuration for verbose startup output,
// with secrets reduced to set/unset.
func settingsFor(cfg *config.Config) [][2]string {
	return [][2]string{
		{"Port", fmt.Sprintf("%d", cfg.Port)},
		{"Database", setOrUnset(cfg.DatabaseURL)},
		{"Gemini API key", setOrUnset(cfg.GeminiAPIKey)},
		{"Question banks", valueOr(cfg.BanksPath, "built-in")},
		{"Fetch timeout", fmt.Sprintf("%ds", cfg.FetchTimeoutSeconds)},
		{"Rate limit", fmt.Sprintf("%.1f req/s, burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)},
	}
}

func setOrUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return "(set)"
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
