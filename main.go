package main

import (
	"os"

	"github.com/freshnutrients/agrichat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
