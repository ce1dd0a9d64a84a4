package session

import (
	"sync"

	"github.com/dl/docsearch/internal/matcher"
)

// State holds the most recent query and its flags. One State is normally
// shared by every session in a process so "repeat last search" and a
// reopened prompt pick up where the user left off.
//
// The zero value is ready to use: empty query, literal, case-insensitive.
type State struct {
	mu       sync.RWMutex
	previous matcher.Query
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

var shared = sync.OnceValue(NewState)

// Shared returns the process-wide State, created on first use.
func Shared() *State {
	return shared()
}

// Previous returns the last stored query.
func (s *State) Previous() matcher.Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previous
}

// SetPrevious overwrites the stored query and both flags.
func (s *State) SetPrevious(q matcher.Query) {
	s.mu.Lock()
	s.previous = q
	s.mu.Unlock()
}

// SetFlags overwrites the flags and keeps the stored query text.
func (s *State) SetFlags(isRegex, matchCase bool) {
	s.mu.Lock()
	s.previous.IsRegex = isRegex
	s.previous.MatchCase = matchCase
	s.mu.Unlock()
}
