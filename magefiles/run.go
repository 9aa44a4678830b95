//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Exports the header of the given project file.
func (Run) Export(project string) error {
	fmt.Println("Export project...")
	if _, err := executeCmd("go", withArgs("run", ".", "export", project), withStream()); err != nil {
		return err
	}
	return nil
}

// Regenerates the header every time the project file is saved.
func (Run) Watch(project string) error {
	mg.Deps(Build{}.Editor)
	if _, err := executeCmd("bin/vkeditor", withArgs("watch", project), withStream()); err != nil {
		return err
	}
	return nil
}
