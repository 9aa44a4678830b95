//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the tests with the race detector; the watcher is the only concurrent code.
func (Test) Race() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./editor/..."), withStream()); err != nil {
		return err
	}
	return nil
}
