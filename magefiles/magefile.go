//go:build mage

// Package main contains Mage build targets for webpify developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "webpify"
	cmdPkg  = "./cmd/webpify"
)

// Init creates the images directory the pipeline expects.
func Init() error {
	if err := os.MkdirAll("images", 0o755); err != nil {
		return fmt.Errorf("creating images: %w", err)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

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

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}
