// Package main implements the marquee CLI.
//
// The binary front-ends the Marquee animation DSL pipeline: lex, parse and
// validate tick-based animation scripts for embedded displays.
package main

import (
	"os"

	"github.com/dhrone/tinyDisplay-sub002/cmd/marquee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
