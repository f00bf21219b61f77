package main

import (
	"os"

	"assetbake/cmd/assetbake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
