// Package commands implements the CLI commands for yango.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/yango/internal/app"
	"go.trai.ch/yango/internal/build"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/probe"
)

// CLI represents the command line interface for yango.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	flags   rootFlags
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, op domain.Operation, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Doctor(ctx context.Context, configPath string) (probe.Result, error)
}

// LogSettings is implemented by loggers that can be tuned from flags.
type LogSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

type rootFlags struct {
	configPath  string
	failOnError bool
	encoding    string
	timeout     time.Duration
	jobs        int
	noCache     bool
	jsonLogs    bool
	verbose     bool
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "yango",
		Short:         "Incrementally format, convert and compile YANG modules with pyang",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", domain.ConfigFileName, "Path to the configuration file")
	pf.BoolVar(&c.flags.failOnError, "fail-on-error", true, "Abort the batch when the tool reports an error")
	pf.StringVar(&c.flags.encoding, "encoding", "", "Text encoding of the model files")
	pf.DurationVar(&c.flags.timeout, "timeout", 0, "Bound each tool invocation (0 disables)")
	pf.IntVarP(&c.flags.jobs, "jobs", "j", 1, "Number of files processed concurrently")
	pf.BoolVarP(&c.flags.noCache, "no-cache", "n", false, "Bypass the hash cache and process every file")
	pf.BoolVar(&c.flags.jsonLogs, "json-logs", false, "Emit logs as JSON")
	pf.BoolVar(&c.flags.verbose, "verbose", false, "Show debug output")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if s, ok := c.logger.(LogSettings); ok {
			s.SetJSON(c.flags.jsonLogs)
			s.SetVerbose(c.flags.verbose)
		}
	}

	for _, op := range domain.BatchOperations {
		rootCmd.AddCommand(c.newOperationCmd(op))
	}
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDoctorCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// overrides collects the flags the user set explicitly.
func (c *CLI) overrides(cmd *cobra.Command, dirs []string) domain.ConfigOverrides {
	o := domain.ConfigOverrides{Directories: dirs}
	flags := cmd.Flags()
	if flags.Changed("fail-on-error") {
		o.FailOnError = &c.flags.failOnError
	}
	if flags.Changed("encoding") {
		o.Encoding = c.flags.encoding
	}
	if flags.Changed("timeout") {
		o.Timeout = &c.flags.timeout
	}
	if flags.Changed("jobs") {
		o.Jobs = &c.flags.jobs
	}
	return o
}
