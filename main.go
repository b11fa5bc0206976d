package main

import (
	"os"

	"github.com/nearfal08/nexus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
