// SPDX-License-Identifier: MIT

// Command squig evaluates generalized trigonometric functions from the shell.
//
//	squig pi 1.5 2 4
//	squig squine -p 3 0 0.5 1
//	squig table -p 4 --from 0 --to 7.42 --n 50 --format csv
//
// Global settings come from flags, a YAML config file (--config) and
// SQUIG_* environment variables, in that order of precedence.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
