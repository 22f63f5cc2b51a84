// main holds the entry logic for the perfgate CLI.
package main

import (
	"github.com/perfgate/perfgate/cmd"
	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/contract"
)

func main() {
	defer baselinestore.CloseStore()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
