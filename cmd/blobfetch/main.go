package main

import (
	"github.com/asad/blobfetch/internal/cli"
)

// main is the entry point for blobfetch.
// It delegates to the CLI package which handles command parsing and execution.
func main() {
	cli.Execute()
}
