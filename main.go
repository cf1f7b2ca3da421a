package main

import (
	"os"

	"github.com/abhisek/learnkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
