package model

import (
	"fmt"
	"strings"
)

// Difficulty represents a question difficulty level. It is carried through
// unmodified from the request that generated the question.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MixedExam is the difficulty selector that mixes all levels per question.
const MixedExam = "exam"

// MixedPool lists the difficulties drawn from in mixed exam mode.
var MixedPool = []Difficulty{DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// DifficultyPool resolves a difficulty selector into the pool of difficulties
// to draw from: the mixed selector yields all levels, anything else a single one.
func DifficultyPool(s string) ([]Difficulty, error) {
	if strings.ToLower(strings.TrimSpace(s)) == MixedExam {
		return MixedPool, nil
	}
	d, err := ParseDifficulty(s)
	if err != nil {
		return nil, err
	}
	return []Difficulty{d}, nil
}

// OptionLabels is the fixed ordered alphabet of choice labels. A question is
// valid only when every label is present.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is one validated multiple-choice exam item.
type Question struct {
	Prompt       string            `json:"prompt"`
	Options      map[string]string `json:"options"`
	CorrectLabel string            `json:"correct_label"`
	Difficulty   Difficulty        `json:"difficulty"`
}

// Validate checks the Question invariant: non-empty stem, all option labels
// present, and a correct label that names one of the options.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question has empty prompt")
	}
	for _, label := range OptionLabels {
		if _, ok := q.Options[label]; !ok {
			return fmt.Errorf("question is missing option %s", label)
		}
	}
	if _, ok := q.Options[q.CorrectLabel]; !ok {
		return fmt.Errorf("correct label %q is not among the options", q.CorrectLabel)
	}
	return nil
}

// Statement renders the question and its options as a single problem
// statement, in label order.
func (q Question) Statement() string {
	var sb strings.Builder
	sb.WriteString(q.Prompt)
	sb.WriteString("\nOptions:\n")
	for _, label := range OptionLabels {
		if text, ok := q.Options[label]; ok {
			fmt.Fprintf(&sb, "%s) %s\n", label, text)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// OptionText returns the text of the option with the given label, formatted
// the way it was shown to the student.
func (q Question) OptionText(label string) string {
	return fmt.Sprintf("%s) %s", label, q.Options[label])
}

// AnswerRecord is the result of grading one question. Feedback is populated
// at most once and never for correct answers.
type AnswerRecord struct {
	Question      Question   `json:"question"`
	SelectedLabel string     `json:"selected_label"`
	IsCorrect     bool       `json:"is_correct"`
	Feedback      string     `json:"feedback,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Phase represents the lifecycle phase of an exam session.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// DefaultTopics lists the course units of the databases curriculum this
// tutor serves. Overridable via the --topics flag.
var DefaultTopics = []string{
	"Database Management Systems (DBMS)",
	"The SQL Language",
	"Database Design",
	"Data Types",
	"Database Security",
	"Basic SQL Queries",
	"SQL Optimization and Best Practices",
	"Database Maintenance",
	"Database Administration",
}

// ExamConfig holds runtime exam parameters set via CLI flags.
type ExamConfig struct {
	NumQuestions int      // target bank size per exam
	MaxAttempts  int      // generation attempt bound per exam (0 = twice the target)
	Lang         string   // UI and prompt language (en, es)
	Topics       []string // course units offered to the student
}
