package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/vc-scout/internal/crawling"
	"github.com/jonathan/vc-scout/internal/enrich"
	"github.com/jonathan/vc-scout/internal/llm"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Generate a research brief for a single company",
	Long:  "Fetches a company's public web pages, builds a text corpus, and generates an AI research brief as JSON.",
	RunE:  runEnrich,
}

var (
	enrichURL        string
	enrichName       string
	enrichOutPath    string
	enrichAPIKey     string
	enrichProvider   string
	enrichUseBrowser bool
)

func init() {
	enrichCmd.Flags().StringVarP(&enrichURL, "url", "u", "", "Company homepage URL (required)")
	enrichCmd.Flags().StringVarP(&enrichName, "name", "n", "", "Company name (required)")
	enrichCmd.Flags().StringVarP(&enrichOutPath, "out", "o", "", "Write the brief to this file instead of stdout")
	enrichCmd.Flags().StringVar(&enrichAPIKey, "api-key", "", "Completion API key (overrides the provider's env var)")
	enrichCmd.Flags().StringVar(&enrichProvider, "provider", "groq", "Completion provider: groq or gemini")
	enrichCmd.Flags().BoolVar(&enrichUseBrowser, "browser", false, "Render JavaScript-heavy pages with a headless browser")

	if err := enrichCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := enrichCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(_ *cobra.Command, _ []string) error {
	// Get API key from flag or environment
	apiKey := enrichAPIKey
	if apiKey == "" {
		apiKey = apiKeyForProvider(enrichProvider)
	}

	enricher := enrich.New(apiKey, llm.ConfigForProvider(enrichProvider), crawling.Options{
		UseBrowser: enrichUseBrowser,
	})

	result, err := enricher.Enrich(context.Background(), enrichURL, enrichName)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	if enrichOutPath != "" {
		if err := os.WriteFile(enrichOutPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", enrichOutPath, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Brief written to %s\n", enrichOutPath)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}
