// Package main provides the entry point for the concurso backend: the HTTP
// API server plus migration and bulk import tooling.
package main

import (
	"context"
	"fmt"
	"os"

	_ "go-concurso-backend/docs" // Important for Swagger

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Concurso Backend",
	Long:  "Candidate and contest directories with profession matching, served over REST.",
}

// @title           Concurso Backend API
// @version         1.0
// @description     Candidate and contest directories with profession matching.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
