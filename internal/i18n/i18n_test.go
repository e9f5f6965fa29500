package i18n

import (
	"context"
	"testing"
)

func TestInitAndTranslate(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	t.Run("english", func(t *testing.T) {
		ctx := WithLocalizer(context.Background(), NewLocalizer("en"))
		if got := T(ctx, "export.final_score"); got != "FINAL SCORE" {
			t.Errorf("T(export.final_score) = %q", got)
		}
		got := Td(ctx, "export.score_of", map[string]any{"Correct": 7, "Total": 10})
		if got != "7 of 10" {
			t.Errorf("Td(export.score_of) = %q", got)
		}
	})

	t.Run("spanish", func(t *testing.T) {
		ctx := WithLocalizer(context.Background(), NewLocalizer("es"))
		if got := T(ctx, "export.final_score"); got != "PUNTAJE FINAL" {
			t.Errorf("T(export.final_score) = %q", got)
		}
		got := Td(ctx, "export.score_of", map[string]any{"Correct": 1, "Total": 2})
		if got != "1 de 2" {
			t.Errorf("Td(export.score_of) = %q", got)
		}
	})

	t.Run("missing key falls back to id", func(t *testing.T) {
		ctx := WithLocalizer(context.Background(), NewLocalizer("en"))
		if got := T(ctx, "no.such.key"); got != "no.such.key" {
			t.Errorf("T(no.such.key) = %q", got)
		}
	})

	t.Run("no localizer in context falls back to english", func(t *testing.T) {
		if got := T(context.Background(), "export.yes"); got != "Yes" {
			t.Errorf("T(export.yes) = %q", got)
		}
	})
}

func TestInitRejectsBadLanguage(t *testing.T) {
	if err := Init("not a language tag"); err == nil {
		t.Error("expected error for malformed language tag")
	}
	// Restore a usable bundle for other tests in this package.
	if err := Init("en"); err != nil {
		t.Fatalf("Init: %v", err)
	}
}
