package main

import (
	"fmt"
	"os"

	"github.com/chrissnell/uplook/internal/cli"
	"github.com/chrissnell/uplook/internal/constants"
	"github.com/chrissnell/uplook/internal/log"
)

func main() {
	err := cli.NewRootCommand(&cli.App{Version: constants.Version()}).Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
