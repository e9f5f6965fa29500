package exam

import (
	"errors"
	"fmt"

	"github.com/Carlo1027/first-chatbot/internal/model"
)

var (
	// ErrInvalidTransition reports a session method called from the wrong
	// phase. This is a contract violation by the caller, not a runtime
	// condition to recover from.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrStaleAnswer reports an answer submitted for a question index that is
	// no longer current, usually a retried or duplicated request.
	ErrStaleAnswer = errors.New("stale answer submission")

	// ErrEmptyBank reports an attempt to start an exam with no questions.
	ErrEmptyBank = errors.New("empty question bank")
)

// Session is the mutable state of one exam attempt. It is exclusively owned
// by one interaction flow; callers re-derive the current view from it on
// every round trip, so everything needed to resume lives here.
type Session struct {
	Phase     model.Phase
	Topic     string
	Questions []model.Question
	Current   int
	Results   []model.AnswerRecord
}

// NewSession creates an empty session in the NotStarted phase.
func NewSession() *Session {
	return &Session{Phase: model.PhaseNotStarted}
}

// Start populates the session with a question bank and moves it to
// InProgress. The bank may be smaller than requested; its actual length is
// the exam length. Only valid from NotStarted.
func (s *Session) Start(topic string, bank []model.Question) error {
	if s.Phase != model.PhaseNotStarted {
		return fmt.Errorf("%w: start in phase %q", ErrInvalidTransition, s.Phase)
	}
	if len(bank) == 0 {
		return ErrEmptyBank
	}
	s.Topic = topic
	s.Questions = bank
	s.Current = 0
	s.Results = nil
	s.Phase = model.PhaseInProgress
	return nil
}

// CurrentQuestion returns the question awaiting an answer. Only valid while
// InProgress.
func (s *Session) CurrentQuestion() (model.Question, error) {
	if s.Phase != model.PhaseInProgress {
		return model.Question{}, fmt.Errorf("%w: current question in phase %q", ErrInvalidTransition, s.Phase)
	}
	return s.Questions[s.Current], nil
}

// RecordAnswer appends one answer record and advances the session. index is
// the question index the caller graded; a mismatch with the current index
// means a duplicate or out-of-order submission and is rejected, so a retried
// request cannot advance the exam twice. Moves to Finished when the last
// question is answered.
func (s *Session) RecordAnswer(index int, rec model.AnswerRecord) error {
	if s.Phase != model.PhaseInProgress {
		return fmt.Errorf("%w: record answer in phase %q", ErrInvalidTransition, s.Phase)
	}
	if index != s.Current {
		return fmt.Errorf("%w: got index %d, current is %d", ErrStaleAnswer, index, s.Current)
	}
	s.Results = append(s.Results, rec)
	s.Current++
	if s.Current == len(s.Questions) {
		s.Phase = model.PhaseFinished
	}
	return nil
}

// Reset discards all session state, returning to a fresh NotStarted session.
// Valid from any phase.
func (s *Session) Reset() {
	*s = Session{Phase: model.PhaseNotStarted}
}

// Score returns the number of correctly answered questions and the total
// answered so far.
func (s *Session) Score() (correct, total int) {
	for _, r := range s.Results {
		if r.IsCorrect {
			correct++
		}
	}
	return correct, len(s.Results)
}
