package main

import (
	"fmt"
	"os"

	"github.com/merkabah-engine/merkabah-install/internal/cli"
	"github.com/merkabah-engine/merkabah-install/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
