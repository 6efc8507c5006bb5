package domain

import "time"

// Summary aggregates the terminal states of one batch run of one operation.
type Summary struct {
	Operation Operation
	Succeeded int
	Failed    int
	Skipped   int
	Elapsed   time.Duration
}

// Record counts a terminal file state. Non-terminal states are ignored.
func (s *Summary) Record(state FileState) {
	switch state {
	case FileSucceeded:
		s.Succeeded++
	case FileFailed:
		s.Failed++
	case FileSkipped:
		s.Skipped++
	case FileDiscovered, FileHashComputed, FileDispatched:
	}
}

// Total returns the number of files that reached a terminal state.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}
