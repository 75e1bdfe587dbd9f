//go:build mage

// Package main contains Mage build targets for resumegen.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "resumegen"
	cmdPkg  = "./cmd/resumegen"
	outDir  = "out"
)

var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Fixtures renders the PDF test resumes into out/.
func Fixtures() error {
	mg.Deps(Build)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "fixtures", "--dir", outDir)
}

// Samples converts out/resume-*.txt to DOCX and then PDF.
func Samples() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "docx", "--dir", outDir); err != nil {
		return err
	}
	return sh.RunV(bin, "pdf", "--dir", outDir)
}

// Clean removes build output.
func Clean() error {
	for _, dir := range []string{binDir, outDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}
