// Package main provides the atscheck command line tool for scoring résumés locally.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atscheck",
	Short: "Resume Checker + ATS score",
	Long:  "atscheck scores a PDF or DOCX resume against a skills list and the usual resume sections, and prints actionable tips.",
}

var (
	skillsFile string
	envLoaded  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&skillsFile, "skills-file", "", "Path to the newline-delimited skills list (default $SKILLS_FILE or ./skills.txt)")
}

func main() {
	// Load .env file if it exists
	envLoaded = godotenv.Load() == nil

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveSkillsFile() string {
	if skillsFile != "" {
		return skillsFile
	}
	if env := os.Getenv("SKILLS_FILE"); env != "" {
		return env
	}
	return "./skills.txt"
}
