package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/yango/internal/adapters/report"
	"go.trai.ch/yango/internal/core/domain"
)

func TestReporter_Report(t *testing.T) {
	tests := []struct {
		name       string
		summary    domain.Summary
		files      int
		goldenName string
	}{
		{
			name: "mixed outcome",
			summary: domain.Summary{
				Operation: domain.OperationFormat,
				Succeeded: 2,
				Failed:    1,
				Skipped:   3,
				Elapsed:   2500 * time.Millisecond,
			},
			files:      6,
			goldenName: "report_mixed",
		},
		{
			name:       "all skipped",
			summary:    domain.Summary{Operation: domain.OperationCompile, Skipped: 4},
			files:      4,
			goldenName: "report_skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			r := report.New()
			r.SetOutput(buf)
			r.Report(tt.summary, tt.files)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
