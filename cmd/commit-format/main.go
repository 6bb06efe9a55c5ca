package main

import (
	"os"

	"github.com/dshills/commit-format/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
