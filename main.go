package main

import (
	"os"

	"github.com/nsxbet/sql-advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
