// Command userlist browses a remote user directory from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/userlist/internal/cli"
	"github.com/rshade/userlist/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
