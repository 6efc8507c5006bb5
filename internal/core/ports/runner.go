// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/yango/internal/core/domain"
)

// Runner runs the external tool.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run starts spec in dir and waits for it to exit.
	//
	// Failures are reported in the returned Outcome rather than as an error:
	// a non-zero exit is an OutcomeToolFailure carrying standard error, and a
	// launch or wait failure is an OutcomeInvocationError.
	Run(ctx context.Context, spec domain.CommandSpec, dir string) domain.Outcome
}
