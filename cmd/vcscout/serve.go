package main

import (
	"fmt"
	"os"

	"github.com/jonathan/vc-scout/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the company catalog, analyst workspace, and enrichment endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "browser", false, "Render JavaScript-heavy pages with a headless browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	// The credential is validated per enrichment call, so a missing key
	// still serves the catalog and workspace endpoints.
	apiKey := apiKeyForProvider(provider)

	cfg := server.Config{
		Port:       servePort,
		APIKey:     apiKey,
		Provider:   provider,
		UseBrowser: serveUseBrowser,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func apiKeyForProvider(provider string) string {
	if provider == "gemini" {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("GROQ_API_KEY")
}
