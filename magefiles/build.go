//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the vkeditor binary into bin/.
func (Build) Editor() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/vkeditor", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go mod tidy.
func (Build) Tidy() error {
	return goModTidy()
}

// Compiles the shaders of a generated project to check they are valid GLSL.
func (Build) Shaders(dir string) error {
	if _, err := executeCmd("glslc", withArgs("shader.vert", "-o", "vert.spv"), withDir(dir), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("glslc", withArgs("shader.frag", "-o", "frag.spv"), withDir(dir), withStream()); err != nil {
		return err
	}
	return nil
}
