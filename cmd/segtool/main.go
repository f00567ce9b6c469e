// SPDX-License-Identifier: MIT

// Command segtool builds, normalizes and queries GPS segment lists from the
// command line. Run "segtool --help" for the command list.
package main

import "github.com/katalvlaran/lvseg/internal/cli"

func main() {
	cli.Execute()
}
