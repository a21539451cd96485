// Package main boots the catalog command line.
package main

import (
	"fmt"
	"os"

	"github.com/ncobase/catalog/cmd/catalog/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
