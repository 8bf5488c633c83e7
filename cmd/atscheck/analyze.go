package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"alfredoptarigan/ats-checker/internal/logger"
	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf|resume.docx>",
	Short: "Score a resume and print tips",
	Long:  "Extract the text of a PDF or DOCX resume, match it against the skills list and expected sections, and print the ATS score with actionable tips.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeJSON    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Log pipeline progress to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := services.ParseFormat(path)
	if err != nil {
		return fmt.Errorf("only PDF and DOCX supported: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	log := logger.Discard()
	if analyzeVerbose {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.DebugLevel)
	}
	if !envLoaded {
		log.Debug("No .env file found. Using environment and default values.")
	}

	skills, err := services.NewSkillStore(resolveSkillsFile()).Load()
	if err != nil {
		return err
	}

	critic, err := services.NewSentenceCritic()
	if err != nil {
		return err
	}

	analyzer := services.NewAnalyzer(skills, services.NewTextExtractor(log), critic, log)
	analysis, err := analyzer.Analyze(cmd.Context(), filepath.Base(path), format, data)
	if err != nil {
		return err
	}

	if analyzeJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(models.NewAnalysisResponse(analysis))
	}

	renderAnalysis(cmd.OutOrStdout(), analysis)
	return nil
}

// renderAnalysis prints the same blocks the upload page shows.
func renderAnalysis(w io.Writer, a *models.Analysis) {
	fmt.Fprintln(w, "🚀 Resume Checker + ATS")
	fmt.Fprintln(w)

	block := func(title, body string) {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, body)
		fmt.Fprintln(w)
	}

	block("📊 ATS Score", fmt.Sprintf("%v%%", a.Score))
	block("✅ Matched Skills", strings.Join(a.MatchedSkills, ", "))
	block("⚠️ Missing Skills", strings.Join(a.ShownMissingSkills(), ", "))
	block("📑 Present Sections", strings.Join(a.PresentSections, ", "))
	block("⚠️ Missing Sections", strings.Join(a.MissingSections, ", "))

	fmt.Fprintln(w, "💡 Actionable Suggestions")
	for _, tip := range a.Tips {
		fmt.Fprintf(w, "- %s\n", tip)
	}
}
