package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yango/internal/adapters/fs"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports/mocks"
	"go.trai.ch/yango/internal/engine/operation"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	runner *mocks.MockRunner
	logger *mocks.MockLogger
	cfg    *domain.Config
	file   domain.SourceFile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	base := t.TempDir()
	path := filepath.Join(base, "src", "acme.module.yang")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("module acme {}\n"), 0o600))

	file, err := domain.NewSourceFile(base, path)
	require.NoError(t, err)

	return &fixture{
		runner: mocks.NewMockRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		cfg: &domain.Config{
			BaseDir:     base,
			Encoding:    domain.DefaultEncoding,
			FailOnError: true,
			Tool:        "pyang",
		},
		file: file,
	}
}

func (f *fixture) executor() *operation.Executor {
	return operation.NewExecutor(f.runner, fs.NewSourceStore(fs.NewCodec()), f.logger, f.cfg)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExecutor_Format_OverwritesOriginal(t *testing.T) {
	f := newFixture(t)
	f.cfg.FormatArgs = []string{"--keep-comments"}

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), f.file.Dir()).
		DoAndReturn(func(_ context.Context, spec domain.CommandSpec, _ string) domain.Outcome {
			assert.Equal(t, []string{"pyang", "--keep-comments", "-f", "yang", f.file.Path}, spec.Args)
			return domain.Success("module acme {\n}\n")
		})

	res, err := f.executor().Execute(context.Background(), domain.OperationFormat, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileSucceeded, res.State)
	assert.Equal(t, "module acme {\n}\n", readFile(t, f.file.Path))
}

func TestExecutor_Convert_WritesDerivedFile(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), f.file.Dir()).
		Return(domain.Success("<module name=\"acme\"/>\n"))

	res, err := f.executor().Execute(context.Background(), domain.OperationConvert, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileSucceeded, res.State)

	derived := filepath.Join(f.file.Dir(), "acme.yin")
	assert.Equal(t, derived, f.file.DerivedPath())
	assert.Equal(t, "<module name=\"acme\"/>\n", readFile(t, derived))
	assert.Equal(t, "module acme {}\n", readFile(t, f.file.Path), "convert must not touch the original")
}

func TestExecutor_Compile_NoMutation(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.CommandSpec, _ string) domain.Outcome {
			assert.Equal(t, []string{"pyang", f.file.Path}, spec.Args)
			return domain.Success("ignored\n")
		})

	res, err := f.executor().Execute(context.Background(), domain.OperationCompile, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileSucceeded, res.State)
	assert.Equal(t, "module acme {}\n", readFile(t, f.file.Path))
	assert.NoFileExists(t, f.file.DerivedPath())
}

func TestExecutor_ToolFailure_FailSoft(t *testing.T) {
	f := newFixture(t)
	f.cfg.FailOnError = false

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ToolFailure("acme.yang:1: error: syntax\n", 1))
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	res, err := f.executor().Execute(context.Background(), domain.OperationFormat, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileFailed, res.State)
	assert.True(t, res.ToolFailed)
	assert.Equal(t, "acme.yang:1: error: syntax", res.Reason)
	assert.Equal(t, "module acme {}\n", readFile(t, f.file.Path))
}

func TestExecutor_ToolFailure_FailFast(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ToolFailure("acme.yang:1: error: syntax\n", 2))

	res, err := f.executor().Execute(context.Background(), domain.OperationConvert, f.file)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrToolFailed)
	assert.ErrorContains(t, err, "acme.module.yang")
	assert.ErrorContains(t, err, "acme.yang:1: error: syntax")
	assert.Equal(t, domain.FileFailed, res.State)
	assert.NoFileExists(t, f.file.DerivedPath())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, f.file.Path, zErr.Metadata()["file"])
	assert.Equal(t, "acme.yang:1: error: syntax", zErr.Metadata()["diagnostic"])
	assert.Equal(t, 2, zErr.Metadata()["exit_code"])
}

func TestExecutor_InvocationError_IsPerFileUnderEitherPolicy(t *testing.T) {
	for _, failOnError := range []bool{true, false} {
		f := newFixture(t)
		f.cfg.FailOnError = failOnError

		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.InvocationError("tool invocation error: exec: \"pyang\": not found"))
		f.logger.EXPECT().Warn(gomock.Any()).Times(1)

		res, err := f.executor().Execute(context.Background(), domain.OperationFormat, f.file)
		require.NoError(t, err)
		assert.Equal(t, domain.FileFailed, res.State)
		assert.False(t, res.ToolFailed)
	}
}

func TestExecutor_WriteFailure_IsPerFile(t *testing.T) {
	f := newFixture(t)
	f.cfg.Encoding = "US-ASCII"

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Success("description \"☃\";\n"))
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	res, err := f.executor().Execute(context.Background(), domain.OperationFormat, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileFailed, res.State)
	assert.Contains(t, res.Reason, domain.ErrEncodingFailed.Error())
}

func TestExecutor_Version_Unsupported(t *testing.T) {
	f := newFixture(t)

	_, err := f.executor().Execute(context.Background(), domain.OperationVersion, f.file)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedOperation.Error())
}

func TestExecutor_Timeout_BoundsInvocation(t *testing.T) {
	f := newFixture(t)
	f.cfg.Timeout = 50 * time.Millisecond
	f.cfg.FailOnError = true

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.CommandSpec, _ string) domain.Outcome {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "invocation context should carry a deadline")
			<-ctx.Done()
			return domain.InvocationError("tool invocation interrupted: " + ctx.Err().Error())
		})
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	res, err := f.executor().Execute(context.Background(), domain.OperationCompile, f.file)
	require.NoError(t, err)
	assert.Equal(t, domain.FileFailed, res.State)
	assert.Contains(t, res.Reason, "interrupted")
}
