package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockGenerator(t *testing.T) {
	wantErr := errors.New("scripted failure")
	m := NewMockGenerator(
		MockReply{Content: "first"},
		MockReply{Err: wantErr},
	)

	got, err := m.Generate(context.Background(), "prompt one")
	if err != nil || got != "first" {
		t.Fatalf("Generate = %q, %v", got, err)
	}

	if _, err := m.Generate(context.Background(), "prompt two"); !errors.Is(err, wantErr) {
		t.Fatalf("expected scripted error, got %v", err)
	}

	if _, err := m.Generate(context.Background(), "prompt three"); err == nil {
		t.Fatal("expected error once the script is exhausted")
	}

	if m.Calls() != 2 {
		t.Errorf("Calls = %d, want 2", m.Calls())
	}
	if len(m.Prompts) != 3 {
		t.Errorf("recorded prompts = %d, want 3", len(m.Prompts))
	}
	if m.Prompts[1] != "prompt two" {
		t.Errorf("Prompts[1] = %q", m.Prompts[1])
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := New("", "key", "gpt-4o-mini")
	if c.model != "gpt-4o-mini" {
		t.Errorf("model = %q", c.model)
	}
	if c.api == nil {
		t.Error("expected initialized API client")
	}
}
