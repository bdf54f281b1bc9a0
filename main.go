package main

import "plexer/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
