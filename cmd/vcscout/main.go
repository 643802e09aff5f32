// Package main provides the entry point for the VC Scout HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vcscout",
	Short: "VC Scout HTTP API Server",
	Long:  "VC Scout serves a curated startup catalog and enriches companies with AI-generated research briefs built from their public web pages.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
