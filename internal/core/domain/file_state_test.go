package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/yango/internal/core/domain"
)

func TestFileState_CanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.FileState
		allowed  bool
	}{
		{domain.FileDiscovered, domain.FileHashComputed, true},
		{domain.FileDiscovered, domain.FileFailed, true},
		{domain.FileDiscovered, domain.FileDispatched, false},
		{domain.FileHashComputed, domain.FileSkipped, true},
		{domain.FileHashComputed, domain.FileDispatched, true},
		{domain.FileHashComputed, domain.FileSucceeded, false},
		{domain.FileDispatched, domain.FileSucceeded, true},
		{domain.FileDispatched, domain.FileFailed, true},
		{domain.FileDispatched, domain.FileSkipped, false},
		{domain.FileSucceeded, domain.FileFailed, false},
		{domain.FileSkipped, domain.FileDispatched, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestFileState_Terminal(t *testing.T) {
	assert.True(t, domain.FileSkipped.Terminal())
	assert.True(t, domain.FileSucceeded.Terminal())
	assert.True(t, domain.FileFailed.Terminal())
	assert.False(t, domain.FileDiscovered.Terminal())
	assert.False(t, domain.FileHashComputed.Terminal())
	assert.False(t, domain.FileDispatched.Terminal())
}

func TestSummary_Record(t *testing.T) {
	s := domain.Summary{Operation: domain.OperationFormat, Elapsed: time.Second}
	for _, st := range []domain.FileState{
		domain.FileSucceeded, domain.FileSucceeded,
		domain.FileFailed,
		domain.FileSkipped, domain.FileSkipped, domain.FileSkipped,
		domain.FileDispatched, domain.FileHashComputed,
	} {
		s.Record(st)
	}

	assert.Equal(t, 2, s.Succeeded)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 3, s.Skipped)
	assert.Equal(t, 6, s.Total())
}
