package main

import (
	"os"

	"github.com/vesselhq/vessel/cli"
)

func main() {
	os.Exit(cli.Execute())
}
