//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Prints the built-in sample matrix report.
func (Run) Sample() error {
	return goCmd("run", "./cmd/catv", "-color").streamed().run()
}

// Prints the report for the file in $CATV_CONFIG and re-runs on every save.
func (Run) Watch() error {
	if os.Getenv("CATV_CONFIG") == "" {
		return fmt.Errorf("CATV_CONFIG is not set")
	}
	return goCmd("run", "./cmd/catv", "-config", "$CATV_CONFIG", "-watch", "-color").streamed().run()
}

// Prints the node transforms of the glTF file in $CATV_GLTF.
func (Run) Scene() error {
	if os.Getenv("CATV_GLTF") == "" {
		return fmt.Errorf("CATV_GLTF is not set")
	}
	return goCmd("run", "./cmd/catv", "-gltf", "$CATV_GLTF").streamed().run()
}

// Installs the catv binary.
func (Run) Install() error {
	return goCmd("install", "./cmd/catv").run()
}
