//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Runs the unit tests of every package.
func (Check) Test() error {
	return goCmd("test", "./...").run()
}

// Runs the tests under the race detector.
func (Check) Race() error {
	return goCmd("test", "-race", "./...").withEnv("CGO_ENABLED", "1").run()
}

// Runs the catv matrix benchmarks.
func (Check) Bench() error {
	return goCmd("test", "-run", "^$", "-bench", ".", "./pkg/catv/").streamed().run()
}

// Runs go vet, then the tests.
func (Check) All() error {
	if err := goCmd("vet", "./...").run(); err != nil {
		return err
	}
	mg.Deps(Check.Test)
	return nil
}
