package main

import (
	"os"

	"github.com/lowkeylabs/applenotes-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
