package main

import (
	"fmt"
	"os"

	"CeibaCheckIn/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "checkinctl:", err)
		os.Exit(1)
	}
}
