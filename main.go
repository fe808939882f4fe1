package main

import (
	"os"

	"github.com/imranulf/learnora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
