package service

import "sync"

// Status holds the console's single error slot and loading flag. At most one
// error message is outstanding at a time: every new failing operation
// overwrites the prior message, and a successful operation does not clear it.
// Dismissal is an explicit caller action.
type Status struct {
	mu      sync.RWMutex
	message string
	loading bool
}

func (s *Status) fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Status) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
}

func (s *Status) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Error returns the current error message, or "" when none is set.
func (s *Status) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

// Loading reports whether a fetch is in flight.
func (s *Status) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
