package main

import (
	"os"

	"github.com/rickgorman/conval/internal/cli"
	"github.com/rickgorman/conval/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
}
