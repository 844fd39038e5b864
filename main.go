package main

import (
	"os"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
