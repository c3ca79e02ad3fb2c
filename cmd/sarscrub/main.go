package main

import (
	"os"

	"github.com/sarscrub/sarscrub/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
