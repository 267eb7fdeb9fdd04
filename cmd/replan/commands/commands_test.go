package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replan/cmd/replan/commands"
	"go.trai.ch/replan/internal/adapters/telemetry"
	"go.trai.ch/replan/internal/app"
	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/core/ports/mocks"
	"go.trai.ch/replan/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli       *commands.CLI
	out       *bytes.Buffer
	buildTool *mocks.MockBuildTool
	executor  *mocks.MockExecutor
	store     *mocks.MockPlanStore
	owner     *mocks.MockPackageOwner
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		out:       new(bytes.Buffer),
		buildTool: mocks.NewMockBuildTool(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		store:     mocks.NewMockPlanStore(ctrl),
		owner:     mocks.NewMockPackageOwner(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	watch := mocks.NewMockWatcher(ctrl)

	a := app.New(
		planner.NewPlanner(f.owner, logger),
		f.buildTool,
		f.executor,
		f.store,
		watch,
		logger,
		telemetry.NewNoOpTracer(),
		"/ws",
		[]string{"mylib"},
	)

	f.cli = commands.New(a)
	f.cli.SetOut(f.out)
	return f
}

func TestPlanCommand_FullRebuild(t *testing.T) {
	f := newCLIFixture(t)

	f.store.EXPECT().Load().Return(nil, nil)
	f.owner.EXPECT().Packages().Return([]string{"mylib"})

	f.cli.SetArgs([]string{"plan", "/ws/mylib/src/lib.rs"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "full rebuild required")
	assert.Contains(t, f.out.String(), "mylib")
}

func TestPlanCommand_Replay(t *testing.T) {
	f := newCLIFixture(t)

	spec := domain.ProcessSpec{Program: "rustc", Args: []string{"--crate-name", "mylib"}}
	g := domain.NewGraph()
	g.Add(domain.Unit{
		ID:         domain.ComputeUnitID(spec),
		Kind:       domain.KindCompile,
		Invocation: spec,
		SrcPath:    "/ws/mylib/src/lib.rs",
	})

	f.store.EXPECT().Load().Return(g, nil)
	f.owner.EXPECT().Owner(gomock.Any()).Return("mylib", true).AnyTimes()

	f.cli.SetArgs([]string{"plan", "/ws/mylib/src/lib.rs"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), "replay 1 cached invocation(s):")
	assert.Contains(t, f.out.String(), "rustc --crate-name mylib")
}

func TestPlanCommand_RequiresFiles(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"plan"})
	assert.Error(t, f.cli.Execute(context.Background()))
}

func TestRunCommand_DelegatesToRebuild(t *testing.T) {
	f := newCLIFixture(t)

	f.store.EXPECT().Load().Return(nil, nil)
	f.owner.EXPECT().Packages().Return([]string{"mylib"}).AnyTimes()

	g := domain.NewGraph()
	f.buildTool.EXPECT().FullBuild(gomock.Any(), []string{"mylib"}).Return(g, nil)
	f.store.EXPECT().Save(g).Return(nil)

	f.cli.SetArgs([]string{"run", "/ws/mylib/src/lib.rs"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), commands.Version)
}
