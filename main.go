// EzyTask - A project and task management board for the terminal.

package main

import (
	"os"

	"github.com/ezytask/ezytask/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
