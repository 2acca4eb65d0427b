package main

import "github.com/oreclock/ore/cmd"

func main() {
	cmd.Execute()
}
