package main

import (
	"os"

	"github.com/msto63/datafilter/cmd/datafilter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
