package exam

import (
	"context"
	"log/slog"

	"github.com/Carlo1027/first-chatbot/internal/llm"
	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// Grader scores a selected option against the answer key and, on a wrong
// answer, requests a remediation explanation from the generation capability.
type Grader struct {
	gen  llm.Generator
	lang prompts.Lang
}

// NewGrader creates a Grader.
func NewGrader(gen llm.Generator, lang prompts.Lang) *Grader {
	return &Grader{gen: gen, lang: lang}
}

// Grade produces the answer record for one question. Correctness is a pure
// comparison against the answer key. Feedback is requested only for wrong
// answers; its content is opaque prose and a failed feedback call leaves it
// empty rather than failing the grading.
func (g *Grader) Grade(ctx context.Context, q model.Question, selected string) model.AnswerRecord {
	rec := model.AnswerRecord{
		Question:      q,
		SelectedLabel: selected,
		IsCorrect:     selected == q.CorrectLabel,
		Difficulty:    q.Difficulty,
	}
	if rec.IsCorrect {
		return rec
	}

	prompt, err := prompts.BuildFeedback(g.lang, q.Statement(), q.OptionText(selected))
	if err != nil {
		slog.Warn("building feedback prompt failed", "error", err)
		return rec
	}
	feedback, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("feedback generation failed", "error", err)
		return rec
	}
	rec.Feedback = feedback
	return rec
}
