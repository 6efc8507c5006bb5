// Package shell provides the process runner that invokes the external tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
)

// waitDelay bounds how long Wait blocks on output pipes after the process
// has been killed, so grandchildren holding the pipes cannot stall a batch.
const waitDelay = 2 * time.Second

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run starts spec in dir, waits for it to exit and classifies the result.
// The environment is the current process environment overlaid with spec.Env.
func (r *Runner) Run(ctx context.Context, spec domain.CommandSpec, dir string) domain.Outcome {
	if len(spec.Args) == 0 {
		return domain.InvocationError(domain.ErrToolInvocationFailed.Error() + ": empty command")
	}

	name := spec.Args[0]
	args := spec.Args[1:]

	cmdEnv := resolveEnvironment(os.Environ(), spec.Env)

	// Resolve the executable with the overlaid PATH
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // tool name comes from config
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = dir
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay

	stdout := &lineCollector{}
	var stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger}
	cmd.Stdout = stdout
	cmd.Stderr = &teeWriter{primary: &stderr, secondary: stderrLog}

	r.logger.Debug("Executing command " + strings.Join(spec.Args, " "))

	if err := cmd.Start(); err != nil {
		return domain.InvocationError(domain.ErrToolInvocationFailed.Error() + ": " + err.Error())
	}

	err := cmd.Wait()
	_ = stdout.Close()
	_ = stderrLog.Close()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.InvocationError("tool invocation interrupted: " + ctxErr.Error())
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return domain.ToolFailure(stderr.String(), exitErr.ExitCode())
		}
		return domain.InvocationError(domain.ErrToolInvocationFailed.Error() + ": " + err.Error())
	}

	return domain.Success(stdout.String())
}

// lineCollector accumulates output as complete lines, each terminated by '\n'.
// A final unterminated line is completed on Close.
type lineCollector struct {
	out     strings.Builder
	pending []byte
}

func (c *lineCollector) Write(p []byte) (int, error) {
	c.pending = append(c.pending, p...)
	for {
		i := bytes.IndexByte(c.pending, '\n')
		if i < 0 {
			break
		}
		c.writeLine(c.pending[:i])
		c.pending = c.pending[i+1:]
	}
	return len(p), nil
}

func (c *lineCollector) Close() error {
	if len(c.pending) > 0 {
		c.writeLine(c.pending)
		c.pending = nil
	}
	return nil
}

func (c *lineCollector) writeLine(line []byte) {
	c.out.Write(bytes.TrimSuffix(line, []byte{'\r'}))
	c.out.WriteByte('\n')
}

func (c *lineCollector) String() string {
	return c.out.String()
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg != "" {
		w.logger.Debug(msg)
	}
}

// teeWriter writes to primary and, best effort, to secondary.
type teeWriter struct {
	primary   *bytes.Buffer
	secondary *logWriter
}

func (t *teeWriter) Write(p []byte) (int, error) {
	_, _ = t.secondary.Write(p)
	return t.primary.Write(p)
}

// resolveEnvironment overlays overrides on the system environment.
// The result is sorted for stable invocations.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
