// Package probe checks that the external translator is installed.
package probe

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/command"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Result describes an installed tool.
type Result struct {
	// Banner is the first line the tool printed for its version flag.
	Banner string
	// Version is the version parsed from Banner, or empty when the banner has
	// no recognisable version.
	Version string
	// Recommended is the version the run was configured to expect.
	Recommended string
}

// Matches reports whether the installed version equals the recommended one.
// A banner without a version is treated as a match.
func (r Result) Matches() bool {
	return r.Version == "" || CompareVersions(r.Version, r.Recommended) == 0
}

// Prober runs the tool's version command.
type Prober struct {
	runner      ports.Runner
	logger      ports.Logger
	builder     *command.Builder
	tool        string
	recommended string
	timeout     time.Duration
	platform    string
}

// NewProber creates a Prober for the tool described by cfg.
func NewProber(runner ports.Runner, logger ports.Logger, cfg *domain.Config) *Prober {
	recommended := cfg.RecommendedVersion
	if recommended == "" {
		recommended = domain.DefaultRecommendedVersion
	}
	return &Prober{
		runner:      runner,
		logger:      logger,
		builder:     command.NewBuilder(cfg.Tool, cfg.ModulePath),
		tool:        toolName(cfg.Tool),
		recommended: recommended,
		timeout:     cfg.Timeout,
		platform:    command.HostPlatform(),
	}
}

// Probe runs the version command. Any failure to run it, or a non-zero exit,
// returns domain.ErrToolNotInstalled. A version other than the recommended
// one is only logged as a warning.
func (p *Prober) Probe(ctx context.Context) (Result, error) {
	spec := p.builder.Build(domain.OperationVersion, nil, p.platform)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	outcome := p.runner.Run(ctx, spec, "")
	if !outcome.Succeeded() {
		msg := "failed to run " + strings.Join(spec.Args, " ")
		if diagnostic := strings.TrimSpace(outcome.Diagnostic); diagnostic != "" {
			msg += ": " + diagnostic
		}
		detail := zerr.New(msg)
		detail = zerr.With(detail, "command", strings.Join(spec.Args, " "))
		detail = zerr.With(detail, "exit_code", outcome.ExitCode)
		return Result{}, errors.Join(detail, domain.ErrToolNotInstalled)
	}

	res := Result{Banner: firstLine(outcome.Output), Recommended: p.recommended}
	p.logger.Info("using " + res.Banner)

	res.Version = parseVersion(res.Banner, p.tool)
	if !res.Matches() {
		p.logger.Warn("Recommended " + p.tool + " version " + res.Recommended + " using " + res.Version)
	}
	return res, nil
}

// CompareVersions compares the leading dot-separated integer components of
// two version strings and returns -1, 0 or +1. Missing components count as
// zero, and anything after the first non-numeric component is ignored, so
// "2.5" equals "2.5.0" and "2.6.1-dev" equals "2.6".
func CompareVersions(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

// canonical converts a dotted version to the "vMAJOR.MINOR.PATCH" form
// understood by semver, keeping at most three numeric components.
func canonical(v string) string {
	var parts []string
	for _, component := range strings.Split(strings.TrimSpace(v), ".") {
		n, err := strconv.Atoi(component)
		if err != nil || n < 0 {
			break
		}
		parts = append(parts, strconv.Itoa(n))
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) == 0 {
		return "v0"
	}
	return "v" + strings.Join(parts, ".")
}

// toolName returns the program name of tool without directory or extension,
// as the tool prints it in its banner.
func toolName(tool string) string {
	if tool == "" {
		return domain.DefaultToolName
	}
	name := filepath.Base(tool)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// parseVersion returns the text after "<tool> " in banner. Banners printed
// by wrappers that still announce the default tool are recognised too.
func parseVersion(banner, tool string) string {
	for _, marker := range []string{tool + " ", domain.DefaultToolName + " "} {
		if idx := strings.Index(banner, marker); idx >= 0 {
			return strings.TrimSpace(banner[idx+len(marker):])
		}
	}
	return ""
}

func firstLine(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(line)
}
