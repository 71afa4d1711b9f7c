// SPDX-License-Identifier: MIT

// Command blueberry runs the blueberrymath kernels on TOML/YAML input files.
package main

import (
	"os"

	"github.com/katalvlaran/blueberrymath/cmd/blueberry/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
