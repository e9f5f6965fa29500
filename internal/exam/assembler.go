package exam

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/Carlo1027/first-chatbot/internal/llm"
	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// AssemblerConfig controls question bank assembly.
type AssemblerConfig struct {
	// TargetCount is the desired bank size.
	TargetCount int

	// MaxAttempts bounds the generation attempts per bank; zero means twice
	// the target. Exhaustion yields a bank smaller than the target, which is
	// a degraded but valid outcome.
	MaxAttempts int

	// Lang selects the prompt language and its reply layout.
	Lang prompts.Lang

	// Pick chooses a difficulty index in [0, n) for each question in mixed
	// mode. Nil uses math/rand; tests supply a deterministic sequence.
	Pick func(n int) int
}

// Assembler builds fixed-size question banks by repeatedly prompting the
// generation capability and parsing its replies, skipping failed attempts.
type Assembler struct {
	gen llm.Generator
	cfg AssemblerConfig
}

// NewAssembler creates an Assembler. Zero-valued config fields get defaults.
func NewAssembler(gen llm.Generator, cfg AssemblerConfig) *Assembler {
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = 10
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 2 * cfg.TargetCount
	}
	if cfg.Pick == nil {
		cfg.Pick = rand.IntN
	}
	return &Assembler{gen: gen, cfg: cfg}
}

// Build assembles a de-duplicated bank of up to TargetCount questions about
// topic, drawing each question's difficulty from pool. The prompts of all
// already-accepted questions are passed back to the generator as a
// do-not-repeat list. A failed generation call or an unusable reply consumes
// an attempt without counting toward the target.
func (a *Assembler) Build(ctx context.Context, topic string, pool []model.Difficulty) ([]model.Question, error) {
	layout := prompts.LayoutFor(a.cfg.Lang)
	var bank []model.Question

	for attempt := 0; attempt < a.cfg.MaxAttempts && len(bank) < a.cfg.TargetCount; attempt++ {
		if err := ctx.Err(); err != nil {
			return bank, err
		}

		difficulty := pool[a.cfg.Pick(len(pool))]

		var previous []string
		for _, q := range bank {
			previous = append(previous, q.Prompt)
		}

		prompt, err := prompts.BuildQuestion(a.cfg.Lang, topic, difficulty, previous)
		if err != nil {
			return bank, err
		}

		reply, err := a.gen.Generate(ctx, prompt)
		if err != nil {
			slog.Warn("question generation failed", "topic", topic, "attempt", attempt+1, "error", err)
			continue
		}

		q, err := ParseQuestion(reply, layout, difficulty)
		if err != nil {
			slog.Warn("discarding malformed question reply", "topic", topic, "attempt", attempt+1, "error", err)
			continue
		}

		bank = append(bank, *q)
	}

	if len(bank) < a.cfg.TargetCount {
		slog.Warn("question bank underfilled", "topic", topic, "got", len(bank), "want", a.cfg.TargetCount)
	}
	return bank, nil
}
