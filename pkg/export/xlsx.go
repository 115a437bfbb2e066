// Package export renders directory listings as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"go-concurso-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	candidateSheet = "Candidatos"
	contestSheet   = "Concursos"
	positionSheet  = "Vagas"
)

// WriteCandidates writes one row per candidate, professions joined by ", ".
func WriteCandidates(w io.Writer, candidates []domain.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", candidateSheet); err != nil {
		return err
	}
	rows := [][]any{{"ID", "Nome", "CPF", "Profissões"}}
	for _, c := range candidates {
		rows = append(rows, []any{c.ID, c.Name, c.TaxID, strings.Join(c.Professions, ", ")})
	}
	if err := writeRows(f, candidateSheet, rows); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteContests writes a contest sheet and a position sheet keyed by contest code.
func WriteContests(w io.Writer, contests []domain.Contest) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", contestSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(positionSheet); err != nil {
		return err
	}

	contestRows := [][]any{{"ID", "Órgão", "Edital", "Código"}}
	positionRows := [][]any{{"Código", "Profissão", "Vagas"}}
	for _, c := range contests {
		contestRows = append(contestRows, []any{c.ID, c.Agency, c.Edital, c.Code})
		for _, p := range c.Positions {
			positionRows = append(positionRows, []any{c.Code, p.Profession, p.Vacancies})
		}
	}
	if err := writeRows(f, contestSheet, contestRows); err != nil {
		return err
	}
	if err := writeRows(f, positionSheet, positionRows); err != nil {
		return err
	}
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
