package ports

import "go.trai.ch/yango/internal/core/domain"

// Reporter presents the outcome of a batch to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report prints the summary of one batch run over files candidate files.
	Report(summary domain.Summary, files int)
}
