package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyguard/cmd/pyguard/commands"
	"go.trai.ch/pyguard/internal/app"
	"go.trai.ch/pyguard/internal/build"
)

type mockApp struct {
	runFunc        func(ctx context.Context, args []string, opts app.RunOptions) error
	checkFunc      func(ctx context.Context, w io.Writer, opts app.RunOptions) error
	candidatesFunc func(ctx context.Context, w io.Writer, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, args []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, args, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, w io.Writer, opts app.RunOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, w, opts)
	}
	return nil
}

func (m *mockApp) Candidates(ctx context.Context, w io.Writer, opts app.RunOptions) error {
	if m.candidatesFunc != nil {
		return m.candidatesFunc(ctx, w, opts)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantArgs []string
		wantOpts app.RunOptions
	}{
		{
			name:     "script flags pass through",
			args:     []string{"run", "script.py", "--flag", "value"},
			wantArgs: []string{"script.py", "--flag", "value"},
			wantOpts: app.RunOptions{LogFormat: "auto"},
		},
		{
			name:     "own flags before the script",
			args:     []string{"run", "--soft", "3.9", "--hard", "3.8", "-v", "script.py", "-v"},
			wantArgs: []string{"script.py", "-v"},
			wantOpts: app.RunOptions{Soft: "3.9", Hard: "3.8", Verbose: true, LogFormat: "auto"},
		},
		{
			name:     "double dash",
			args:     []string{"run", "--python", "python3.4", "--", "-m", "http.server"},
			wantArgs: []string{"-m", "http.server"},
			wantOpts: app.RunOptions{Interpreter: "python3.4", LogFormat: "auto"},
		},
		{
			name:     "no arguments",
			args:     []string{"run", "--log-format", "json", "--floor", "3.0"},
			wantArgs: []string{},
			wantOpts: app.RunOptions{Floor: "3.0", LogFormat: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			var gotOpts app.RunOptions
			called := false

			mock := &mockApp{
				runFunc: func(_ context.Context, args []string, opts app.RunOptions) error {
					gotArgs = args
					gotOpts = opts
					called = true
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			require.True(t, called)
			assert.Equal(t, tt.wantOpts, gotOpts)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, gotArgs)
			} else {
				assert.Equal(t, tt.wantArgs, gotArgs)
			}
		})
	}
}

func TestCommands_RunError(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
			return errors.New("simulated error")
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"run", "script.py"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Check(t *testing.T) {
	var gotOpts app.RunOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, w io.Writer, opts app.RunOptions) error {
			gotOpts = opts
			_, _ = fmt.Fprintln(w, "verdict")
			return nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"check", "--python", "python3.8"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "verdict\n", buf.String())
	assert.Equal(t, "python3.8", gotOpts.Interpreter)
}

func TestCommands_CheckRejectsArgs(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"check", "script.py"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Candidates(t *testing.T) {
	called := false
	mock := &mockApp{
		candidatesFunc: func(_ context.Context, w io.Writer, opts app.RunOptions) error {
			called = true
			assert.Equal(t, "3.10", opts.Soft)
			_, _ = fmt.Fprintln(w, "table")
			return nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"candidates", "--soft", "3.10"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "table\n", buf.String())
}

func TestCommands_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "subcommand", args: []string{"version"}},
		{name: "flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := commands.New(&mockApp{})

			buf := new(bytes.Buffer)
			cli.SetOutput(buf, buf)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Contains(t, buf.String(), "pyguard version "+build.Version)
			assert.Contains(t, buf.String(), build.Commit)
		})
	}
}

func TestCommands_SharedFlagsDoNotCollide(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "run", args: []string{"run", "script.py"}},
		{name: "run verbose", args: []string{"run", "-v", "script.py"}},
		{name: "check", args: []string{"check", "-v"}},
		{name: "candidates", args: []string{"candidates"}},
		{name: "version", args: []string{"version"}},
		{name: "version flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := commands.New(&mockApp{})
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			cli.SetArgs(tt.args)

			require.NotPanics(t, func() {
				require.NoError(t, cli.Execute(context.Background()))
			})
		})
	}
}

func TestCommands_VerboseShorthand(t *testing.T) {
	var gotOpts app.RunOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, _ io.Writer, opts app.RunOptions) error {
			gotOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"check", "-v"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, gotOpts.Verbose)
}

func TestCommands_RejectsUnknownLogFormat(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
			panic("should not be called")
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"run", "--log-format", "xml", "script.py"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid argument "xml" for "--log-format" flag`)
}

func TestCommands_RunHelpNamesInterpreterRequirement(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"run", "--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "run fails before searching")
}
