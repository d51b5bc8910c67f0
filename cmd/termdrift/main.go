// Command termdrift runs and snapshots termdrift demo applications.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/termdrift/cmd/termdrift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
