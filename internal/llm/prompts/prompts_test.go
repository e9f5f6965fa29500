package prompts

import (
	"strings"
	"testing"

	"github.com/Carlo1027/first-chatbot/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"en", LangEnglish},
		{"es", LangSpanish},
		{"es-MX", LangSpanish},
		{"EN-us", LangEnglish},
		{"", LangEnglish},
		{"fr", LangEnglish},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildQuestion(t *testing.T) {
	t.Run("without exclusions", func(t *testing.T) {
		prompt, err := BuildQuestion(LangEnglish, "Database Design", model.DifficultyIntermediate, nil)
		if err != nil {
			t.Fatalf("BuildQuestion: %v", err)
		}
		if !strings.Contains(prompt, "Database Design") {
			t.Error("prompt should name the topic")
		}
		if !strings.Contains(prompt, "intermediate") {
			t.Error("prompt should name the difficulty")
		}
		for _, marker := range []string{"Question:", "Options:", "Correct answer:", "A)", "D)"} {
			if !strings.Contains(prompt, marker) {
				t.Errorf("prompt should request the %q layout element", marker)
			}
		}
		if strings.Contains(prompt, "already been asked") {
			t.Error("prompt should not carry a do-not-repeat block without exclusions")
		}
	})

	t.Run("with exclusions", func(t *testing.T) {
		previous := []string{"What is a primary key?", "What is an index?"}
		prompt, err := BuildQuestion(LangEnglish, "Database Design", model.DifficultyBasic, previous)
		if err != nil {
			t.Fatalf("BuildQuestion: %v", err)
		}
		for _, p := range previous {
			if !strings.Contains(prompt, "- "+p) {
				t.Errorf("prompt should list excluded question %q", p)
			}
		}
	})

	t.Run("spanish layout and difficulty", func(t *testing.T) {
		prompt, err := BuildQuestion(LangSpanish, "Lenguaje SQL", model.DifficultyAdvanced, nil)
		if err != nil {
			t.Fatalf("BuildQuestion: %v", err)
		}
		for _, marker := range []string{"Pregunta:", "Opciones:", "Respuesta correcta:"} {
			if !strings.Contains(prompt, marker) {
				t.Errorf("spanish prompt should request the %q layout element", marker)
			}
		}
		if !strings.Contains(prompt, "avanzado") {
			t.Error("spanish prompt should use the localized difficulty")
		}
	})
}

func TestBuildFeedback(t *testing.T) {
	prompt, err := BuildFeedback(LangEnglish, "What is 2+2?\nOptions:\nA) 3\nB) 4", "A) 3")
	if err != nil {
		t.Fatalf("BuildFeedback: %v", err)
	}
	if !strings.Contains(prompt, "What is 2+2?") {
		t.Error("prompt should contain the problem statement")
	}
	if !strings.Contains(prompt, "A) 3") {
		t.Error("prompt should contain the student's answer")
	}
	if !strings.Contains(prompt, "step-by-step solution") {
		t.Error("prompt should request the full worked solution")
	}
}

func TestBuildExplainAndExercise(t *testing.T) {
	explain, err := BuildExplain(LangEnglish, "Data Types")
	if err != nil {
		t.Fatalf("BuildExplain: %v", err)
	}
	if !strings.Contains(explain, "Data Types") {
		t.Error("explain prompt should name the topic")
	}

	exercise, err := BuildExercise(LangSpanish, "Seguridad", model.DifficultyBasic)
	if err != nil {
		t.Fatalf("BuildExercise: %v", err)
	}
	if !strings.Contains(exercise, "Seguridad") {
		t.Error("exercise prompt should name the topic")
	}
	if !strings.Contains(exercise, "básico") {
		t.Error("exercise prompt should use the localized difficulty")
	}
	if !strings.Contains(exercise, "No incluyas la solución") {
		t.Error("exercise prompt should forbid including the solution")
	}
}

func TestLayoutFor(t *testing.T) {
	en := LayoutFor(LangEnglish)
	if en.Question != "Question:" || en.Options != "Options:" || en.Answer != "Correct answer:" {
		t.Errorf("unexpected english layout %+v", en)
	}
	es := LayoutFor(LangSpanish)
	if es.Question != "Pregunta:" || es.Answer != "Respuesta correcta:" {
		t.Errorf("unexpected spanish layout %+v", es)
	}
}
