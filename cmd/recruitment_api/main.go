// Package main provides the entry point for the Recruitment Pipeline HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruitment_api",
	Short: "Recruitment Pipeline HTTP API Server",
	Long:  "Recruitment API scores candidates against weighted position requirements, runs AI interviews, and derives pipeline stages on the fly via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
