package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// runCLI runs the CLI in-process and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// writeConfig writes a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "deco.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const basicsOutput = `before
middle
after
6
BEFORE
HELLO THERE
AFTER
The positional arguments are ('Yesyesyesyes',)
The keyword arguments are {'keyword_arg': 'Nononono'}
Yesyesyesyes and Nononono.
`

//
// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func TestRun_DefaultExamples(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "run")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, basicsOutput, out)
	assert.Empty(t, errOut)
}

func TestRun_SelectedExamples(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "run", "plus-one", "middle")
	require.Equal(t, 0, code)
	assert.Equal(t, "6\nbefore\nmiddle\nafter\n", out)
}

func TestRun_DecoratorOverrideFromConfig(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, `
decorators:
  say-hi: [before-and-after, uppercase]
  middle: []
`)
	code, out, errOut := runCLI(t, "--config", p, "run", "say-hi", "middle")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "before\nHELLO THERE\nafter\nmiddle\n", out)
}

func TestRun_Countdown(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, "slowdown_ms: 0\ncountdown_from: 2\n")
	code, out, _ := runCLI(t, "--config", p, "run", "countdown")
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n1\nLiftoff!\n", out)
}

func TestRun_TimerAndDebugLogToStderr(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, "waste_iterations: 1\n")
	code, out, errOut := runCLI(t, "--config", p, "run", "timer", "debug")
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, "Whoa Richard! 112 already, you are growing up!\n", out)
	assert.Contains(t, errOut, `Finished 'waste_some_time' in`)
	assert.Contains(t, errOut, `Calling make_greeting('Richard', age=112)`)
	assert.Contains(t, errOut, `"func":"make_greeting"`)
}

func TestRun_VerboseLogsDecorators(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "-v", "run", "say-hi")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"applied":["uppercase","before-and-after"]`)
}

//
// -----------------------------------------------------------------------------
// errors
// -----------------------------------------------------------------------------

func TestRun_UnknownExample(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "run", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown example "nope"`)
}

func TestRun_UnknownDecoratorInConfig(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, "decorators:\n  middle: [timer]\n")
	code, out, errOut := runCLI(t, "--config", p, "run", "middle")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `deco: unknown decorator "timer"`)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, "slowdown_ms: -3\n")
	code, _, errOut := runCLI(t, "--config", p, "run")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "slowdown_ms must be >= 0")
}

func TestRun_BadFlagIsUsageError(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "run", "--no-such-flag")
	assert.Equal(t, 2, code)
	assert.True(t, strings.HasPrefix(errOut, "deco: "), errOut)
}

//
// -----------------------------------------------------------------------------
// list
// -----------------------------------------------------------------------------

func TestList(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	assert.Equal(t, strings.Join(exampleNames(), "\n")+"\n", out)
}

func TestExampleNames_MatchCatalog(t *testing.T) {
	t.Parallel()

	names := exampleNames()
	assert.Len(t, names, len(catalogExamples))
	for _, name := range names {
		_, ok := catalogExamples[name]
		assert.True(t, ok, name)
	}
}
