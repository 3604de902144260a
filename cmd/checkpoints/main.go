package main

import (
	"os"

	"checkpoints/cmd/checkpoints/commands"
)

func main() {
	os.Exit(commands.ExitCode(commands.Execute()))
}
