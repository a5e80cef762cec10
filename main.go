package main

import (
	"os"

	"github.com/taoky/logproc/cmd"
)

func run() int {
	if err := cmd.RootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
