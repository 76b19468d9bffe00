// Swatch - A random colour palette generator
//
// Swatch generates colour palettes, rates their contrast against a
// background and exports them as CSS custom properties.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
