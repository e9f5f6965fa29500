// Package tutor implements the free-text tutoring operations: concept
// explanations, practice exercises, and evaluation of written answers. Each
// operation is one prompt build plus one generation call whose reply is
// passed through verbatim.
package tutor

import (
	"context"
	"fmt"

	"github.com/Carlo1027/first-chatbot/internal/llm"
	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// Tutor answers tutoring requests through the generation capability.
type Tutor struct {
	gen  llm.Generator
	lang prompts.Lang
}

// New creates a Tutor.
func New(gen llm.Generator, lang prompts.Lang) *Tutor {
	return &Tutor{gen: gen, lang: lang}
}

// ExplainConcept returns a step-by-step explanation of a course topic.
func (t *Tutor) ExplainConcept(ctx context.Context, topic string) (string, error) {
	prompt, err := prompts.BuildExplain(t.lang, topic)
	if err != nil {
		return "", err
	}
	text, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("explain concept: %w", err)
	}
	return text, nil
}

// ProposeExercise returns a new practice problem without its solution.
func (t *Tutor) ProposeExercise(ctx context.Context, topic string, difficulty model.Difficulty) (string, error) {
	prompt, err := prompts.BuildExercise(t.lang, topic, difficulty)
	if err != nil {
		return "", err
	}
	text, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("propose exercise: %w", err)
	}
	return text, nil
}

// EvaluateAnswer returns detailed feedback on a student's written answer to
// a previously proposed exercise.
func (t *Tutor) EvaluateAnswer(ctx context.Context, exercise, studentAnswer string) (string, error) {
	prompt, err := prompts.BuildFeedback(t.lang, exercise, studentAnswer)
	if err != nil {
		return "", err
	}
	text, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("evaluate answer: %w", err)
	}
	return text, nil
}
