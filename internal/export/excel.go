// Package export renders a finished exam session into downloadable
// artifacts: a tabular spreadsheet and a paginated PDF report. Both are
// deterministic functions of the answer records plus the student identity.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Carlo1027/first-chatbot/internal/i18n"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// Identity labels the exported artifacts. It is used for nothing else.
type Identity struct {
	Name    string
	Contact string
}

// Filename derives a download filename from the student name, with
// whitespace replaced by underscores. ext includes the dot.
func Filename(ctx context.Context, id Identity, ext string) string {
	name := strings.Join(strings.Fields(id.Name), "_")
	return i18n.T(ctx, "export.filename_prefix") + "_" + name + ext
}

// Workbook renders one row per answer record plus a trailing summary row
// with the final score, and returns the serialized .xlsx workbook.
func Workbook(ctx context.Context, results []model.AnswerRecord, id Identity) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := i18n.T(ctx, "export.sheet")
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{
		i18n.T(ctx, "export.header.question"),
		i18n.T(ctx, "export.header.difficulty"),
		i18n.T(ctx, "export.header.selected"),
		i18n.T(ctx, "export.header.correct"),
		i18n.T(ctx, "export.header.is_correct"),
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range results {
		isCorrect := i18n.T(ctx, "export.no")
		if r.IsCorrect {
			isCorrect = i18n.T(ctx, "export.yes")
		}
		row := []any{
			r.Question.Prompt,
			i18n.T(ctx, "difficulty."+string(r.Difficulty)),
			r.SelectedLabel,
			r.Question.CorrectLabel,
			isCorrect,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	correct, total := score(results)
	summary := []any{
		i18n.T(ctx, "export.final_score"),
		"", "", "",
		i18n.Td(ctx, "export.score_of", map[string]any{"Correct": correct, "Total": total}),
	}
	cell, err := excelize.CoordinatesToCellName(1, len(results)+2)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return nil, fmt.Errorf("write summary row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func score(results []model.AnswerRecord) (correct, total int) {
	for _, r := range results {
		if r.IsCorrect {
			correct++
		}
	}
	return correct, len(results)
}
