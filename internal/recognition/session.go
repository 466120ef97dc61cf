package recognition

import (
	"fmt"
	"sync"
)

// Engine runs text recognition on a raw image byte buffer and returns the
// detected regions in the engine's own order.
type Engine interface {
	Recognize(imageData []byte) ([]Observation, error)
}

// RecognitionError wraps a failure from the recognition engine. The
// underlying engine error is preserved unchanged and available through
// errors.Unwrap / errors.Is / errors.As.
type RecognitionError struct {
	Err error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed: %v", e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// Session owns the current generation of recognized observations for one
// image stream.
//
// The observation list is fully replaced on every Recognize call, never
// merged. A mutex serializes Recognize, so a session runs at most one
// recognition at a time; concurrent callers queue on the lock. Observations
// and Subscribe are safe to call from any goroutine.
type Session struct {
	mu           sync.Mutex
	engine       Engine
	observations []Observation
	subscribers  []func([]Observation)
}

// NewSession creates a session around the given engine. The session starts
// with an empty observation list.
func NewSession(engine Engine) *Session {
	return &Session{engine: engine}
}

// Recognize runs the engine on the image bytes and replaces the held
// observation list with the results.
//
// The previous list is discarded before the engine runs. On success the new
// results are installed atomically in engine order and returned. On failure
// the list stays empty and the engine error is returned wrapped in a
// *RecognitionError; no partial results are retained.
//
// Subscribers are notified with a snapshot after every call, so a failed
// recognition notifies them with an empty list.
func (s *Session) Recognize(imageData []byte) ([]Observation, error) {
	s.mu.Lock()
	s.observations = nil

	results, err := s.engine.Recognize(imageData)
	if err == nil {
		s.observations = results
	}
	snapshot := s.snapshotLocked()
	subscribers := make([]func([]Observation), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	// Notify outside the lock so subscribers may call back into the session.
	for _, notify := range subscribers {
		notify(snapshot)
	}

	if err != nil {
		return nil, &RecognitionError{Err: err}
	}
	return snapshot, nil
}

// Observations returns a snapshot of the current observation list.
func (s *Session) Observations() []Observation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// Recognize call. Callbacks run on the goroutine that called Recognize.
func (s *Session) Subscribe(fn func([]Observation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) snapshotLocked() []Observation {
	snapshot := make([]Observation, len(s.observations))
	copy(snapshot, s.observations)
	return snapshot
}
