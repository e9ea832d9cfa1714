package main

import (
	"os"

	"github.com/resumeiq/resumeiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
