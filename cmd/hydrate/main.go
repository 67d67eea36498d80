package main

import (
	"fmt"
	"os"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.OpenFromConfig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.ExitSuccess)
}
