package main

import (
	"os"

	"github.com/codeweft/weft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
