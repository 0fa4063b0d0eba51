// main is the entry point for the planchart CLI.
package main

import (
	"github.com/huangsam/planchart/cmd"
	"github.com/huangsam/planchart/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
