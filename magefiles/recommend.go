//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Batch builds the CLI and recommends presets for every analysis in analyses/.
func Batch() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath(), "batch", "--input-dir", "analyses", "--output-dir", "recommendations")
}

// Serve builds the CLI and starts the HTTP API on the configured address.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "serve")
}

// Prompt prints the vision-model instruction for the built-in tables.
func Prompt() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "prompt")
}
