package domain

// FileState is the position of a file in the per-file state machine:
//
//	Discovered -> HashComputed -> {Skipped | Dispatched} -> {Succeeded | Failed}
//
// A file whose content cannot be read or hashed goes straight to Failed.
type FileState string

const (
	// FileDiscovered is the initial state of every file handed to a batch.
	FileDiscovered FileState = "discovered"
	// FileHashComputed means the file's digest is known.
	FileHashComputed FileState = "hash-computed"
	// FileSkipped means the digest matched the cache. Terminal.
	FileSkipped FileState = "skipped"
	// FileDispatched means the tool is being run for the file.
	FileDispatched FileState = "dispatched"
	// FileSucceeded means the operation completed. Terminal.
	FileSucceeded FileState = "succeeded"
	// FileFailed means the operation did not complete. Terminal.
	FileFailed FileState = "failed"
)

var fileTransitions = map[FileState][]FileState{
	FileDiscovered:   {FileHashComputed, FileFailed},
	FileHashComputed: {FileSkipped, FileDispatched},
	FileDispatched:   {FileSucceeded, FileFailed},
}

// CanTransition reports whether next may follow s.
func (s FileState) CanTransition(next FileState) bool {
	for _, allowed := range fileTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends the state machine.
func (s FileState) Terminal() bool {
	return s == FileSkipped || s == FileSucceeded || s == FileFailed
}
