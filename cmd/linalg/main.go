// SPDX-License-Identifier: MIT

// Command linalg factors small dense matrices from the terminal.
//
//	linalg lu -i a.txt
//	echo "2 1; 1 2" | tr ';' '\n' | linalg eigen --plot scree.png
//	linalg solve -i a.txt --rhs 1,2,3
package main

import (
	"os"

	"github.com/katalvlaran/linalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
