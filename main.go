package main

import (
	"os"

	"github.com/azzautomation2026/shama/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
