package main

import (
	"os"

	"github.com/jeffreywbertke/DC/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
