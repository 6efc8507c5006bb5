package probe_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports/mocks"
	"go.trai.ch/yango/internal/engine/probe"
	"go.uber.org/mock/gomock"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.6", "1.6", 0},
		{"1.6", "1.6.0", 0},
		{"1.7", "1.6", 1},
		{"1.10", "1.9", 1},
		{"2.5.3", "2.6", -1},
		{"2.6.1-dev", "2.6", 0},
		{"02.6", "2.6", 0},
		{"", "1.6", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, probe.CompareVersions(tt.a, tt.b))
		})
	}
}

func TestProber_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, spec domain.CommandSpec, _ string) domain.Outcome {
			assert.Equal(t, []string{"pyang", "-v"}, spec.Args)
			assert.Empty(t, spec.Env)
			return domain.Success("pyang 1.6\n")
		})
	logger.EXPECT().Info("using pyang 1.6")

	p := probe.NewProber(runner, logger, &domain.Config{Tool: "pyang", ModulePath: "/models"})
	res, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.6", res.Version)
	assert.Equal(t, domain.DefaultRecommendedVersion, res.Recommended)
	assert.True(t, res.Matches())
}

func TestProber_Probe_VersionMismatchWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Success("pyang 2.6.1\n"))
	logger.EXPECT().Info("using pyang 2.6.1")
	logger.EXPECT().Warn("Recommended pyang version 1.6 using 2.6.1")

	p := probe.NewProber(runner, logger, &domain.Config{Tool: "pyang", RecommendedVersion: "1.6"})
	res, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Matches())
}

func TestProber_Probe_BannerWithoutVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Success("custom translator\nbuild 7\n"))
	logger.EXPECT().Info("using custom translator")

	p := probe.NewProber(runner, logger, &domain.Config{})
	res, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Version)
}

func TestProber_Probe_NotInstalled(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
	}{
		{name: "non-zero exit", outcome: domain.ToolFailure("usage", 2)},
		{name: "launch failure", outcome: domain.InvocationError("tool invocation error: executable file not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			logger := mocks.NewMockLogger(ctrl)

			runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.outcome)

			p := probe.NewProber(runner, logger, &domain.Config{Tool: "pyang"})
			_, err := p.Probe(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrToolNotInstalled)
			assert.ErrorContains(t, err, "pyang -v")
		})
	}
}

func TestProber_Probe_CustomToolBanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.CommandSpec, _ string) domain.Outcome {
			assert.Equal(t, []string{"/opt/yang/bin/yanglint", "-v"}, spec.Args)
			return domain.Success("yanglint 2.1.30\n")
		})
	logger.EXPECT().Info("using yanglint 2.1.30")
	logger.EXPECT().Warn("Recommended yanglint version 2.1 using 2.1.30")

	p := probe.NewProber(runner, logger, &domain.Config{Tool: "/opt/yang/bin/yanglint", RecommendedVersion: "2.1"})
	res, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.1.30", res.Version)
	assert.False(t, res.Matches())
}

func TestProber_Probe_Timeout(t *testing.T) {
	t.Run("bounded when configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		logger := mocks.NewMockLogger(ctrl)

		runner.EXPECT().
			Run(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.CommandSpec, _ string) domain.Outcome {
				deadline, ok := ctx.Deadline()
				require.True(t, ok, "probe must carry the configured timeout")
				assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
				return domain.InvocationError("tool invocation interrupted: context deadline exceeded")
			})

		p := probe.NewProber(runner, logger, &domain.Config{Tool: "pyang", Timeout: time.Minute})
		_, err := p.Probe(context.Background())
		require.ErrorIs(t, err, domain.ErrToolNotInstalled)
		assert.ErrorContains(t, err, "interrupted")
	})

	t.Run("unbounded by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		logger := mocks.NewMockLogger(ctrl)

		runner.EXPECT().
			Run(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.CommandSpec, _ string) domain.Outcome {
				_, ok := ctx.Deadline()
				assert.False(t, ok)
				return domain.Success("pyang 1.6\n")
			})
		logger.EXPECT().Info(gomock.Any())

		p := probe.NewProber(runner, logger, &domain.Config{Tool: "pyang"})
		_, err := p.Probe(context.Background())
		require.NoError(t, err)
	})
}
