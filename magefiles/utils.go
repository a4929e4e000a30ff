//go:build mage

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// goStep is one invocation of the go tool.
type goStep struct {
	args   []string
	env    map[string]string
	stream bool
}

func goCmd(args ...string) goStep {
	return goStep{args: args}
}

// withEnv returns a copy of s that also sets key=value.
func (s goStep) withEnv(key, value string) goStep {
	env := make(map[string]string, len(s.env)+1)
	for k, v := range s.env {
		env[k] = v
	}
	env[key] = value
	s.env = env
	return s
}

// streamed returns a copy of s whose output always goes to the terminal.
func (s goStep) streamed() goStep {
	s.stream = true
	return s
}

// run executes the step. Unless the step is streamed or mage runs with -v,
// output is buffered and only printed when the step fails.
func (s goStep) run() error {
	fmt.Printf("==> go %s\n", strings.Join(s.args, " "))

	var buf bytes.Buffer
	var stdout, stderr io.Writer = &buf, &buf
	loud := s.stream || mg.Verbose()
	if loud {
		stdout, stderr = os.Stdout, os.Stderr
	}
	if _, err := sh.Exec(s.env, stdout, stderr, mg.GoCmd(), s.args...); err != nil {
		if !loud {
			_, _ = os.Stdout.Write(buf.Bytes())
		}
		return err
	}
	return nil
}
