// Package report renders batch summaries for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/ui/output"
	"go.trai.ch/yango/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter prints one summary block per batch.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return &Reporter{out: output.New(os.Stdout)}
}

// SetOutput redirects the report to w.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = output.New(w)
}

// Report prints the summary of a batch over files candidate files.
func (r *Reporter) Report(summary domain.Summary, files int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := []string{
		"",
		fmt.Sprintf("Operation            : %s", r.styled(summary.Operation.String(), style.Iris, true)),
		fmt.Sprintf("Number of yang files : %d", files),
		fmt.Sprintf("Successful           : %s file(s)", r.count(summary.Succeeded, style.Green)),
		fmt.Sprintf("Failed               : %s file(s)", r.count(summary.Failed, style.Red)),
		fmt.Sprintf("Skipped              : %s file(s)", r.count(summary.Skipped, style.Yellow)),
		"",
		fmt.Sprintf("Approximate time taken: %ds", int64(summary.Elapsed.Seconds())),
	}

	for _, line := range lines {
		_, _ = r.out.WriteString(line + "\n")
	}
}

func (r *Reporter) count(n int, color lipgloss.Color) string {
	return r.styled(fmt.Sprintf("%d", n), color, n > 0)
}

func (r *Reporter) styled(text string, color lipgloss.Color, highlight bool) string {
	if !highlight {
		return text
	}
	return r.out.String(text).Foreground(termenv.RGBColor(string(color))).Bold().String()
}
