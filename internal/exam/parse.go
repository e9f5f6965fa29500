// Package exam implements the adaptive exam session engine: reply parsing,
// question bank assembly, the session state machine, and grading.
package exam

import (
	"fmt"
	"strings"

	"github.com/Carlo1027/first-chatbot/internal/llm/prompts"
	"github.com/Carlo1027/first-chatbot/internal/model"
)

// ParseError reports why a generation reply could not be used. Callers must
// treat it as "this attempt produced nothing usable", never as fatal: the
// upstream model formats its replies free-form and will get it wrong.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "unusable reply: " + e.Reason
}

// ParseQuestion extracts a validated Question from the raw reply text using
// the given section markers. The stem sits between the first and second
// marker, the options block between the second and third, and the correct
// label after the third. A reply that is missing a marker, recovers fewer
// than the four expected option labels, or names a correct label that is not
// among them yields a ParseError and no Question.
func ParseQuestion(raw string, layout prompts.Layout, difficulty model.Difficulty) (*model.Question, error) {
	qStart := strings.Index(raw, layout.Question)
	if qStart < 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("missing %q marker", layout.Question)}
	}
	rest := raw[qStart+len(layout.Question):]

	oStart := strings.Index(rest, layout.Options)
	if oStart < 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("missing %q marker", layout.Options)}
	}
	stem := strings.TrimSpace(rest[:oStart])
	rest = rest[oStart+len(layout.Options):]

	aStart := strings.Index(rest, layout.Answer)
	if aStart < 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("missing %q marker", layout.Answer)}
	}
	optionsBlock := rest[:aStart]
	correct := strings.TrimSpace(rest[aStart+len(layout.Answer):])

	options := parseOptions(optionsBlock)
	if len(options) < len(model.OptionLabels) {
		return nil, &ParseError{Reason: fmt.Sprintf("recovered %d of %d options", len(options), len(model.OptionLabels))}
	}

	q := &model.Question{
		Prompt:       stem,
		Options:      options,
		CorrectLabel: correct,
		Difficulty:   difficulty,
	}
	if err := q.Validate(); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return q, nil
}

// parseOptions splits the options block into lines, each split on its first
// ")" into a (label, text) pair. Lines whose label is outside the fixed
// alphabet are ignored.
func parseOptions(block string) map[string]string {
	options := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		label, text, found := strings.Cut(line, ")")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		if !isOptionLabel(label) {
			continue
		}
		options[label] = strings.TrimSpace(text)
	}
	return options
}

func isOptionLabel(label string) bool {
	for _, l := range model.OptionLabels {
		if label == l {
			return true
		}
	}
	return false
}
