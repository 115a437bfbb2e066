package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go-concurso-backend/config"
	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/usecase"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/logger"
	"go-concurso-backend/pkg/validation"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk load candidates and contests from JSON files",
	Long: "Reads JSON arrays of candidates and/or contests and adds each record through the directory rules. " +
		"Invalid or duplicate records are reported and skipped; a storage failure stops the import.",
	RunE: runImport,
}

var (
	importCandidatesPath string
	importContestsPath   string
)

func init() {
	importCmd.Flags().StringVar(&importCandidatesPath, "candidates", "", "Path to a JSON array of candidates")
	importCmd.Flags().StringVar(&importContestsPath, "contests", "", "Path to a JSON array of contests")
	importCmd.MarkFlagsOneRequired("candidates", "contests")

	rootCmd.AddCommand(importCmd)
}

// importReport counts added records and describes each skipped one.
type importReport struct {
	Added   int
	Skipped []string
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	st, err := openStores(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open stores: %w", err)
	}
	defer st.Close()

	validate := validation.New()
	out := cmd.OutOrStdout()

	if importCandidatesPath != "" {
		report, err := importFile(importCandidatesPath, func(r io.Reader) (importReport, error) {
			return importCandidates(cmd.Context(), usecase.NewCandidateUsecase(st.candidates, validate, nil), r)
		})
		printReport(out, "candidates", report)
		if err != nil {
			return err
		}
	}

	if importContestsPath != "" {
		report, err := importFile(importContestsPath, func(r io.Reader) (importReport, error) {
			return importContests(cmd.Context(), usecase.NewContestUsecase(st.contests, validate, nil), r)
		})
		printReport(out, "contests", report)
		if err != nil {
			return err
		}
	}
	return nil
}

func importFile(path string, load func(io.Reader) (importReport, error)) (importReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return importReport{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}

func importCandidates(ctx context.Context, uc domain.CandidateUsecase, r io.Reader) (importReport, error) {
	var records []domain.Candidate
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return importReport{}, fmt.Errorf("failed to decode candidates JSON: %w", err)
	}

	var report importReport
	for i := range records {
		c := records[i]
		c.ID = 0
		if err := uc.AddCandidate(ctx, &c); err != nil {
			if apperror.KindOf(err) == apperror.KindInfrastructure {
				return report, fmt.Errorf("candidate #%d: %w", i+1, err)
			}
			report.Skipped = append(report.Skipped, fmt.Sprintf("candidate #%d (%s): %s", i+1, c.TaxID, describe(err)))
			continue
		}
		report.Added++
	}
	return report, nil
}

func importContests(ctx context.Context, uc domain.ContestUsecase, r io.Reader) (importReport, error) {
	var records []domain.Contest
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return importReport{}, fmt.Errorf("failed to decode contests JSON: %w", err)
	}

	var report importReport
	for i := range records {
		c := records[i]
		c.ID = 0
		if err := uc.AddContest(ctx, &c); err != nil {
			if apperror.KindOf(err) == apperror.KindInfrastructure {
				return report, fmt.Errorf("contest #%d: %w", i+1, err)
			}
			report.Skipped = append(report.Skipped, fmt.Sprintf("contest #%d (%s): %s", i+1, c.Code, describe(err)))
			continue
		}
		report.Added++
	}
	return report, nil
}

func describe(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		return appErr.Message + ": " + strings.Join(appErr.Details, "; ")
	}
	return err.Error()
}

func printReport(w io.Writer, entity string, report importReport) {
	fmt.Fprintf(w, "%s: %d added, %d skipped\n", entity, report.Added, len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
