package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yango/internal/adapters/config"
	"go.trai.ch/yango/internal/adapters/fs"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log, fs.NewCodec())
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := newLoader(t).Load(filepath.Join(tmpDir, domain.ConfigFileName), domain.ConfigOverrides{})
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.BaseDir)
	assert.Equal(t, filepath.Join(tmpDir, "target"), cfg.TargetDir)
	assert.Equal(t, filepath.Join(tmpDir, "src"), cfg.SourceDir)
	assert.Empty(t, cfg.Directories)
	assert.Equal(t, []string{filepath.Join(tmpDir, "src")}, cfg.Roots())
	assert.Equal(t, []string{"**/*.yang"}, cfg.Includes)
	assert.Equal(t, []string{"**/ietf*.yang"}, cfg.Excludes)
	assert.Equal(t, "UTF-8", cfg.Encoding)
	assert.True(t, cfg.FailOnError)
	assert.Equal(t, "pyang", cfg.Tool)
	assert.Equal(t, "1.6", cfg.RecommendedVersion)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.CacheFailedAttempts)
}

func TestLoader_Load_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
baseDir: project
targetDir: build/cache
directories:
  - models
  - /abs/models
includes: ["**/*.yang", "extra/*.yang"]
excludes: []
encoding: ISO-8859-1
failOnError: false
tool: /opt/pyang/bin/pyang
recommendedVersion: "2.5"
modulePath: /usr/share/yang
timeout: 30s
jobs: 4
cacheFailedAttempts: true
formatArgs: ["--keep-comments"]
convertArgs: ["--yin-canonical"]
compileArgs: ["--strict"]
`)

	cfg, err := newLoader(t).Load(path, domain.ConfigOverrides{})
	require.NoError(t, err)

	base := filepath.Join(tmpDir, "project")
	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, filepath.Join(base, "build", "cache"), cfg.TargetDir)
	assert.Equal(t, []string{filepath.Join(base, "models"), "/abs/models"}, cfg.Directories)
	assert.Equal(t, []string{"**/*.yang", "extra/*.yang"}, cfg.Includes)
	assert.Equal(t, []string{"**/ietf*.yang"}, cfg.Excludes, "empty excludes fall back to the defaults")
	assert.Equal(t, "ISO-8859-1", cfg.Encoding)
	assert.False(t, cfg.FailOnError)
	assert.Equal(t, "/opt/pyang/bin/pyang", cfg.Tool)
	assert.Equal(t, "2.5", cfg.RecommendedVersion)
	assert.Equal(t, "/usr/share/yang", cfg.ModulePath)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.CacheFailedAttempts)
	assert.Equal(t, []string{"--keep-comments"}, cfg.ExtraArgs(domain.OperationFormat))
	assert.Equal(t, []string{"--yin-canonical"}, cfg.ExtraArgs(domain.OperationConvert))
	assert.Equal(t, []string{"--strict"}, cfg.ExtraArgs(domain.OperationCompile))
}

func TestLoader_Load_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "failOnError: true\njobs: 2\n")

	failOnError := false
	jobs := 8
	timeout := time.Minute

	cfg, err := newLoader(t).Load(path, domain.ConfigOverrides{
		Directories: []string{tmpDir},
		FailOnError: &failOnError,
		Encoding:    "windows-1252",
		Timeout:     &timeout,
		Jobs:        &jobs,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{tmpDir}, cfg.Directories)
	assert.False(t, cfg.FailOnError)
	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, 8, cfg.Jobs)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid yaml", content: "jobs: [", wantErr: domain.ErrConfigParseFailed.Error()},
		{name: "negative jobs", content: "jobs: -1", wantErr: "jobs must not be negative"},
		{name: "bad timeout", content: "timeout: soon", wantErr: domain.ErrInvalidConfig.Error()},
		{name: "negative timeout", content: "timeout: -5s", wantErr: "timeout must not be negative"},
		{name: "unknown encoding", content: "encoding: klingon", wantErr: domain.ErrUnknownEncoding.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := newLoader(t).Load(path, domain.ConfigOverrides{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_Load_Unreadable(t *testing.T) {
	tmpDir := t.TempDir()
	// A directory in place of the file cannot be read.
	path := filepath.Join(tmpDir, domain.ConfigFileName)
	require.NoError(t, os.Mkdir(path, 0o750))

	_, err := newLoader(t).Load(path, domain.ConfigOverrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
