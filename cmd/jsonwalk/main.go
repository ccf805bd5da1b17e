package main

import (
	"os"

	"github.com/icloudza/jsonwalk/cmd/jsonwalk/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
