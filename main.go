package main

import "github.com/dougvj/embed/cmd"

// main is the entry point of the embed CLI application.
// It executes the root command which handles argument parsing and dispatch.
func main() {
	cmd.Execute()
}
