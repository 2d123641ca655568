package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	signedIn bool
	calls    []string
	fail     error
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.fail
}

func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.signedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context, args []string) error {
	f.signedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Profile(ctx context.Context, args []string) error {
	return f.record("profile", args)
}
func (f *fakeExec) Art(ctx context.Context, args []string) error { return f.record("art", args) }
func (f *fakeExec) Lookup(ctx context.Context, args []string) error {
	return f.record("lookup", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec execIface, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, false, sc)
}

func TestRunREPL_GateAndDispatch(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	run(exec,
		"help",
		"profile show",
		"whoami",
		"login alice.near",
		"help",
		"profile set name=a",
		"art show bafy",
		"lookup bafy",
		"",
		"logout",
		"art show bafy",
		"bogus",
		"exit",
		"whoami",
	)

	assert.Equal(t, []string{
		"whoami",
		"login alice.near",
		"profile set name=a",
		"art show bafy",
		"lookup bafy",
		"logout",
	}, exec.calls)

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, helpSignedOut)
	assert.Contains(t, joined, helpSignedIn)
	assert.Contains(t, joined, "Sign in first")
	assert.Contains(t, joined, "Unknown command:bogus")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{signedIn: true, fail: errors.New("node down")}

	run(exec, "profile show", "art show x")

	assert.Len(t, exec.calls, 2)
	assert.Contains(t, strings.Join(*out, "\n"), "node down")
}

func TestRunREPL_EOFEnds(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	run(exec)
	assert.Empty(t, exec.calls)
}
