package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"

	"github.com/chronos-tachyon/hufftree/internal/cli"
)

func main() {
	pterm.SetDefaultOutput(os.Stderr)
	rootCmd := cli.NewRootCommand(afero.NewOsFs(), os.LookupEnv)
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
