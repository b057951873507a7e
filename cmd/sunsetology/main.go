// Sunsetology - sunset colour palettes from your photos
//
// Sunsetology extracts a small set of visually distinct colours from a photo,
// favouring warm sunset tones, and renders them as gradients and artwork.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/sunsetology/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
