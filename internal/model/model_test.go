package model

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		Prompt: "What does ACID stand for?",
		Options: map[string]string{
			"A": "Atomicity, Consistency, Isolation, Durability",
			"B": "Association, Consistency, Integrity, Durability",
			"C": "Atomicity, Concurrency, Isolation, Distribution",
			"D": "Availability, Consistency, Isolation, Durability",
		},
		CorrectLabel: "A",
		Difficulty:   DifficultyBasic,
	}
}

func TestQuestionValidate(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	t.Run("empty prompt", func(t *testing.T) {
		q := validQuestion()
		q.Prompt = "  "
		if q.Validate() == nil {
			t.Error("expected validation failure")
		}
	})

	t.Run("missing option", func(t *testing.T) {
		q := validQuestion()
		delete(q.Options, "C")
		if q.Validate() == nil {
			t.Error("expected validation failure")
		}
	})

	t.Run("correct label not an option", func(t *testing.T) {
		q := validQuestion()
		q.CorrectLabel = "E"
		if q.Validate() == nil {
			t.Error("expected validation failure")
		}
	})
}

func TestQuestionStatement(t *testing.T) {
	s := validQuestion().Statement()
	if !strings.HasPrefix(s, "What does ACID stand for?") {
		t.Errorf("statement should start with the stem:\n%s", s)
	}
	// Options appear in label order regardless of map iteration order.
	posA := strings.Index(s, "A) ")
	posD := strings.Index(s, "D) ")
	if posA < 0 || posD < 0 || posA > posD {
		t.Errorf("options out of order:\n%s", s)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"basic", DifficultyBasic, false},
		{" Intermediate ", DifficultyIntermediate, false},
		{"ADVANCED", DifficultyAdvanced, false},
		{"expert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyPool(t *testing.T) {
	pool, err := DifficultyPool("exam")
	if err != nil {
		t.Fatalf("DifficultyPool: %v", err)
	}
	if len(pool) != 3 {
		t.Errorf("mixed pool size = %d, want 3", len(pool))
	}

	pool, err = DifficultyPool("advanced")
	if err != nil {
		t.Fatalf("DifficultyPool: %v", err)
	}
	if len(pool) != 1 || pool[0] != DifficultyAdvanced {
		t.Errorf("single pool = %v", pool)
	}

	if _, err := DifficultyPool("nope"); err == nil {
		t.Error("expected error for unknown selector")
	}
}
