package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/golden"
)

func runCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultDataset(t *testing.T) {
	for _, ext := range []string{"buffered", "owned"} {
		out, err := runCommand(t, strings.NewReader("\n"), "--extractor", ext)
		assert.NilError(t, err, ext)
		golden.Assert(t, out, "default.golden")
	}
}

func TestNegativeValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "single list", args: []string{"--values", "-4,-3,2"}},
		{name: "repeated flag", args: []string{"--values", "-4,-3", "--values", "2"}},
		{name: "equals form", args: []string{"--values=-4,-3,2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, nil, append([]string{"--no-pause"}, tt.args...)...)
			assert.NilError(t, err)
			assert.Check(t, is.Contains(out, "SIZE OF INPUT VECTOR = 3\n"))
			assert.Check(t, is.Contains(out, "   -4    -3     2 \n"))
			assert.Check(t, is.Contains(out, "Average Value: -1.666667 \n"))
			assert.Check(t, is.Contains(out, "SIZE OF OUTPUT VECTOR = 2\nOUTPUT EVEN VECTOR = \n   -4     2 \n"))
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "empty values", args: []string{"--no-pause", "--values="}, errMsg: `invalid argument "" for "--values" flag`},
		{name: "bad value", args: []string{"--no-pause", "--values", "1,two"}, errMsg: `invalid argument "1,two" for "--values" flag`},
		{name: "out of range", args: []string{"--no-pause", "--values", "2147483648"}, errMsg: `for "--values" flag`},
		{name: "negative positional", args: []string{"--no-pause", "-4"}, errMsg: "unknown shorthand flag: '4'"},
		{name: "positional values", args: []string{"--no-pause", "--", "-4", "2"}, errMsg: "accepts no arguments, use --values"},
		{name: "bad extractor", args: []string{"--no-pause", "--extractor", "chbased"}, errMsg: `unknown extractor "chbased"`},
		{name: "bad log level", args: []string{"--no-pause", "--log-level", "loud"}, errMsg: "not a valid logrus Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, nil, tt.args...)
			assert.ErrorContains(t, err, tt.errMsg)
			assert.Check(t, errdefs.IsInvalidArgument(err))
			assert.Check(t, is.Equal(out, ""))
		})
	}
}

func TestWaitForKey(t *testing.T) {
	assert.NilError(t, waitForKey(context.Background(), strings.NewReader("x")))
	assert.NilError(t, waitForKey(context.Background(), strings.NewReader("")))
}

func TestWaitForKeyCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NilError(t, waitForKey(ctx, r))
}
