package main

import (
	"os"

	"github.com/beekhof/file-stack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
