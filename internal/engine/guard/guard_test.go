package guard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/core/ports/mocks"
	"go.trai.ch/pyguard/internal/engine/guard"
	"go.uber.org/mock/gomock"
)

var errNotFound = errors.New("executable file not found in $PATH")

type guardTestMocks struct {
	launcher *mocks.MockLauncher
	prober   *mocks.MockProber
	logger   *mocks.MockLogger
}

// setupGuardTest creates a guard with strict launcher and prober mocks.
// Debug logging is allowed everywhere since skipped candidates are logged there.
func setupGuardTest(t *testing.T, policy domain.Policy) (*guard.Guard, guardTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := guardTestMocks{
		launcher: mocks.NewMockLauncher(ctrl),
		prober:   mocks.NewMockProber(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return guard.New(m.launcher, m.prober, m.logger, policy), m
}

// expectMissing records in-order failing hand-offs for the given programs.
func expectMissing(m guardTestMocks, args []string, programs ...string) []any {
	calls := make([]any, 0, len(programs))
	for _, p := range programs {
		calls = append(calls, m.launcher.EXPECT().Handoff(gomock.Any(), p, args).Return(0, errNotFound))
	}
	return calls
}

var upgradeNames = []string{
	"python3.6", "python3.7", "python3.8", "python3.9", "python3.10",
	"python3.11", "python3.12", "python3.13", "python3.14", "python3.15",
}

func TestGuard_Check_PassesAtOrAboveSoft(t *testing.T) {
	for _, active := range []domain.Version{
		domain.NewVersion(3, 6),
		domain.NewVersion(3, 7),
		domain.NewVersion(3, 13),
		domain.NewVersion(4, 0),
	} {
		t.Run(active.String(), func(t *testing.T) {
			g, _ := setupGuardTest(t, domain.DefaultPolicy())

			out, err := g.Check(context.Background(), active, []string{"script.py"})
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPassed, out.Status)
			assert.True(t, out.Proceeds())
		})
	}
}

func TestGuard_Check_BelowFloor(t *testing.T) {
	g, _ := setupGuardTest(t, domain.DefaultPolicy())

	_, err := g.Check(context.Background(), domain.NewVersion(2, 6), []string{"script.py"})
	require.Error(t, err)

	var verr *domain.VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ErrInterpreterTooOld, verr.Kind)
	assert.Equal(t, domain.NewVersion(3, 6), verr.Required)
	assert.Contains(t, err.Error(), "too old")
}

func TestGuard_Check_SearchOrder(t *testing.T) {
	g, m := setupGuardTest(t, domain.DefaultPolicy())
	args := []string{"script.py", "--flag", "value"}

	calls := expectMissing(m, args, upgradeNames...)
	calls = append(calls, expectMissing(m, args, "python3.5")...)
	calls = append(calls, m.prober.EXPECT().Probe(gomock.Any(), "python3").Return(domain.Version{}, errNotFound))
	gomock.InOrder(calls...)

	_, err := g.Check(context.Background(), domain.NewVersion(3, 4), args)

	var verr *domain.VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ErrInterpreterVersionTooOld, verr.Kind)
	assert.Equal(t, "Python 3 version is too old; Please use Python 3.5 or newer.", err.Error())
}

func TestGuard_Check_UpgradeHandoff(t *testing.T) {
	g, m := setupGuardTest(t, domain.DefaultPolicy())
	args := []string{"script.py", "--flag", "value"}

	calls := expectMissing(m, args, "python3.6", "python3.7")
	calls = append(calls, m.launcher.EXPECT().Handoff(gomock.Any(), "python3.8", args).Return(0, nil))
	gomock.InOrder(calls...)

	out, err := g.Check(context.Background(), domain.NewVersion(3, 4), args)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHandedOff, out.Status)
	assert.Equal(t, "python3.8", out.Program)
	assert.False(t, out.Proceeds())
}

func TestGuard_Check_HandoffExitCode(t *testing.T) {
	g, m := setupGuardTest(t, domain.DefaultPolicy())
	args := []string{"script.py"}

	m.launcher.EXPECT().Handoff(gomock.Any(), "python3.6", args).Return(7, nil)

	out, err := g.Check(context.Background(), domain.NewVersion(3, 4), args)
	require.NoError(t, err)
	assert.Equal(t, 7, out.ExitCode)
}

func TestGuard_Check_DowngradeHandoff(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Soft = domain.NewVersion(3, 9)
	policy.Hard = domain.NewVersion(3, 5)
	policy.UpgradeWindow = 2

	g, m := setupGuardTest(t, policy)
	args := []string{"script.py"}

	calls := expectMissing(m, args, "python3.9", "python3.10", "python3.8")
	calls = append(calls, m.launcher.EXPECT().Handoff(gomock.Any(), "python3.7", args).Return(0, nil))
	gomock.InOrder(calls...)

	out, err := g.Check(context.Background(), domain.NewVersion(3, 6), args)
	require.NoError(t, err)
	assert.Equal(t, "python3.7", out.Program)
}

func TestGuard_Check_DowngradeNeverReachesActive(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Soft = domain.NewVersion(3, 9)
	policy.Hard = domain.NewVersion(3, 5)
	policy.UpgradeWindow = 1

	g, m := setupGuardTest(t, policy)
	args := []string{"script.py"}

	// Only 3.8 and 3.7 are newer than the active 3.6. Nothing else may be launched.
	gomock.InOrder(
		m.launcher.EXPECT().Handoff(gomock.Any(), "python3.9", args).Return(0, errNotFound),
		m.launcher.EXPECT().Handoff(gomock.Any(), "python3.8", args).Return(0, errNotFound),
		m.launcher.EXPECT().Handoff(gomock.Any(), "python3.7", args).Return(0, errNotFound),
		m.prober.EXPECT().Probe(gomock.Any(), "python3").Return(domain.NewVersion(3, 6), nil),
	)
	m.logger.EXPECT().Warn(gomock.Any())

	out, err := g.Check(context.Background(), domain.NewVersion(3, 6), args)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTolerated, out.Status)
}

func TestGuard_Check_GenericFallback(t *testing.T) {
	args := []string{"script.py", "-v"}

	tests := []struct {
		name       string
		active     domain.Version
		reported   domain.Version
		probeErr   error
		expectCall bool
	}{
		{"newer generic is launched", domain.NewVersion(3, 4), domain.NewVersion(3, 5), nil, true},
		{"generic equal to active is skipped", domain.NewVersion(3, 4), domain.NewVersion(3, 4), nil, false},
		{"generic below hard is skipped", domain.NewVersion(3, 3), domain.NewVersion(3, 4), nil, false},
		{"probe failure is skipped", domain.NewVersion(3, 4), domain.Version{}, errNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, m := setupGuardTest(t, domain.DefaultPolicy())

			m.launcher.EXPECT().Handoff(gomock.Any(), gomock.Not("python3"), args).Return(0, errNotFound).AnyTimes()
			m.prober.EXPECT().Probe(gomock.Any(), "python3").Return(tt.reported, tt.probeErr)

			if tt.expectCall {
				m.launcher.EXPECT().Handoff(gomock.Any(), "python3", args).Return(0, nil)
			}

			out, err := g.Check(context.Background(), tt.active, args)
			if tt.expectCall {
				require.NoError(t, err)
				assert.Equal(t, "python3", out.Program)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestGuard_Check_LegacyMajor(t *testing.T) {
	g, m := setupGuardTest(t, domain.DefaultPolicy())
	args := []string{"script.py"}

	calls := expectMissing(m, args, upgradeNames...)
	calls = append(calls, expectMissing(m, args, "python3.5")...)
	calls = append(calls, m.prober.EXPECT().Probe(gomock.Any(), "python3").Return(domain.Version{}, errNotFound))
	gomock.InOrder(calls...)

	_, err := g.Check(context.Background(), domain.NewVersion(2, 7), args)

	var verr *domain.VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ErrLegacyMajorUnsupported, verr.Kind)
	assert.Equal(t, "Python 2 is no longer supported; Please upgrade to Python 3.5+.", err.Error())
}

func TestGuard_Check_Tolerated(t *testing.T) {
	g, m := setupGuardTest(t, domain.DefaultPolicy())
	args := []string{"script.py"}

	expectMissing(m, args, upgradeNames...)
	m.prober.EXPECT().Probe(gomock.Any(), "python3").Return(domain.NewVersion(3, 5), nil)
	m.logger.EXPECT().Warn(gomock.Any())

	out, err := g.Check(context.Background(), domain.NewVersion(3, 5), args)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTolerated, out.Status)
	assert.True(t, out.Proceeds())
}

func TestGuard_Policy(t *testing.T) {
	g, _ := setupGuardTest(t, domain.DefaultPolicy())
	assert.Equal(t, domain.DefaultPolicy(), g.Policy())
}
