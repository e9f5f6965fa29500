package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Carlo1027/first-chatbot/internal/llm"
	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

func TestExplainConcept(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockReply{Content: "An index is a data structure..."})
	tut := New(gen, prompts.LangEnglish)

	text, err := tut.ExplainConcept(context.Background(), "Indexes")
	if err != nil {
		t.Fatalf("ExplainConcept: %v", err)
	}
	if text != "An index is a data structure..." {
		t.Errorf("reply not passed through verbatim: %q", text)
	}
	if !strings.Contains(gen.Prompts[0], "Indexes") {
		t.Error("prompt should name the topic")
	}
}

func TestProposeExercise(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockReply{Content: "Design a schema for a library."})
	tut := New(gen, prompts.LangEnglish)

	text, err := tut.ProposeExercise(context.Background(), "Database Design", model.DifficultyIntermediate)
	if err != nil {
		t.Fatalf("ProposeExercise: %v", err)
	}
	if text == "" {
		t.Error("expected exercise text")
	}
	if !strings.Contains(gen.Prompts[0], "intermediate") {
		t.Error("prompt should name the difficulty")
	}
}

func TestEvaluateAnswer(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockReply{Content: "Correct! Well done."})
	tut := New(gen, prompts.LangEnglish)

	text, err := tut.EvaluateAnswer(context.Background(), "Normalize this table...", "Split into two relations.")
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if text != "Correct! Well done." {
		t.Errorf("reply not passed through verbatim: %q", text)
	}
	if !strings.Contains(gen.Prompts[0], "Normalize this table...") {
		t.Error("prompt should contain the exercise")
	}
	if !strings.Contains(gen.Prompts[0], "Split into two relations.") {
		t.Error("prompt should contain the student answer")
	}
}

func TestGenerationFailurePropagates(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockReply{Err: errors.New("boom")})
	tut := New(gen, prompts.LangEnglish)

	if _, err := tut.ExplainConcept(context.Background(), "Indexes"); err == nil {
		t.Error("expected error from failed generation")
	}
}
