package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/chronos/cmd/chronos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
