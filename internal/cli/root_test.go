package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	listCalls   int
	addCalls    int
	watchCalls  int
	deleteArgs  []string
	returnError error
}

func (s *stubExec) List(context.Context) error  { s.listCalls++; return s.returnError }
func (s *stubExec) Add(context.Context) error   { s.addCalls++; return s.returnError }
func (s *stubExec) Watch(context.Context) error { s.watchCalls++; return s.returnError }
func (s *stubExec) Delete(_ context.Context, arg string) error {
	s.deleteArgs = append(s.deleteArgs, arg)
	return s.returnError
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, x := range a {
			printed = append(printed, x.(string))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	runREPL(context.Background(), s, bufio.NewReader(strings.NewReader(script)))
	return printed
}

func TestREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{}

	runScript(t, s, "list\nl\nwatch\nadd\ndelete 2\nd 1\nexit\n")

	assert.Equal(t, 2, s.listCalls)
	assert.Equal(t, 1, s.watchCalls)
	assert.Equal(t, 1, s.addCalls)
	assert.Equal(t, []string{"2", "1"}, s.deleteArgs)
}

func TestREPL_DeleteWithoutArgPassesEmpty(t *testing.T) {
	s := &stubExec{}

	runScript(t, s, "delete\nexit\n")

	assert.Equal(t, []string{""}, s.deleteArgs)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}

	printed := runScript(t, s, "frobnicate\nexit\n")

	found := false
	for _, line := range printed {
		if strings.Contains(line, "unknown command") {
			found = true
		}
	}
	assert.True(t, found, "unknown command should be reported, got %v", printed)
}

func TestREPL_CommandErrorsPrintedLoopContinues(t *testing.T) {
	s := &stubExec{returnError: errors.New("boom")}

	printed := runScript(t, s, "list\nlist\nexit\n")

	assert.Equal(t, 2, s.listCalls, "loop must survive command errors")
	errLines := 0
	for _, line := range printed {
		if strings.Contains(line, "boom") {
			errLines++
		}
	}
	assert.Equal(t, 2, errLines)
}

func TestREPL_EmptyLinesIgnored(t *testing.T) {
	s := &stubExec{}

	runScript(t, s, "\n\n   \nlist\nquit\n")

	assert.Equal(t, 1, s.listCalls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "list\n") // no exit; EOF ends the loop
	assert.Equal(t, 1, s.listCalls)
}

func TestREPL_FinalLineWithoutNewlineDispatched(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "list") // EOF right after the command
	assert.Equal(t, 1, s.listCalls)
}
