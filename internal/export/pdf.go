package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/Carlo1027/first-chatbot/internal/i18n"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// Layout constants for the PDF report, in points on US Letter. These are
// fixed configuration, not computed layout: text wraps at a character count
// and a new page begins once the cursor passes the break line.
const (
	pageHeight   = 792.0
	topMargin    = 72.0
	leftMargin   = 50.0
	optionIndent = 70.0
	pageBreakAt  = pageHeight - 150.0

	questionWrap = 90
	optionWrap   = 80
)

// PDF renders the paginated report: a title with the student identity, the
// final score, and one block per answer record.
func PDF(ctx context.Context, results []model.AnswerRecord, id Identity) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	y := topMargin

	correct, total := score(results)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftMargin, y, tr(i18n.Td(ctx, "export.title", map[string]any{
		"Name":    id.Name,
		"Contact": id.Contact,
	})))
	y += 30
	pdf.SetFont("Helvetica", "", 12)
	scoreStr := i18n.Td(ctx, "export.score_of", map[string]any{"Correct": correct, "Total": total})
	pdf.Text(leftMargin, y, tr(i18n.Td(ctx, "export.final_score_line", map[string]any{"Score": scoreStr})))
	y += 40

	for i, r := range results {
		if y > pageBreakAt {
			pdf.AddPage()
			y = topMargin
		}

		pdf.SetFont("Helvetica", "B", 12)
		heading := fmt.Sprintf("%d. %s (%s: %s)", i+1, r.Question.Prompt,
			i18n.T(ctx, "export.level"), i18n.T(ctx, "difficulty."+string(r.Difficulty)))
		for _, line := range wrap(heading, questionWrap) {
			pdf.Text(leftMargin, y, tr(line))
			y += 15
		}

		pdf.SetFont("Helvetica", "", 11)
		for _, label := range model.OptionLabels {
			text, ok := r.Question.Options[label]
			if !ok {
				continue
			}
			for _, line := range wrap(label+") "+text, optionWrap) {
				pdf.Text(optionIndent, y, tr(line))
				y += 13
			}
		}

		mark := i18n.T(ctx, "export.mark_incorrect")
		if r.IsCorrect {
			mark = i18n.T(ctx, "export.mark_correct")
		}
		pdf.Text(optionIndent, y, tr(i18n.Td(ctx, "export.answer_line", map[string]any{
			"Selected": r.SelectedLabel,
			"Correct":  r.Question.CorrectLabel,
			"Mark":     mark,
		})))
		y += 25
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// wrap greedily splits s into lines of at most width runes, breaking on
// spaces. Words longer than width get a line of their own.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
