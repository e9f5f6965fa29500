package session

import (
	"testing"

	"github.com/Carlo1027/first-chatbot/internal/model"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	id, sess := r.Create()
	if id == "" {
		t.Fatal("expected non-empty session id")
	}
	if sess.Phase != model.PhaseNotStarted {
		t.Errorf("new session phase = %q", sess.Phase)
	}

	got, ok := r.Get(id)
	if !ok {
		t.Fatal("session not found after Create")
	}
	if got != sess {
		t.Error("Get returned a different session")
	}

	if _, ok := r.Get("no-such-id"); ok {
		t.Error("unknown id should not resolve")
	}

	id2, _ := r.Create()
	if id2 == id {
		t.Error("session ids must be unique")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}

	r.Delete(id)
	if _, ok := r.Get(id); ok {
		t.Error("session still resolvable after Delete")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}
