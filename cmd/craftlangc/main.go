package main

import (
	"os"

	"github.com/xmamo/craftlangc/cmd/craftlangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
