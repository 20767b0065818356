package main

import (
	"os"

	"duedash/cmd/duedash/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr, nil))
}
