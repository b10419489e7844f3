package main

import "floodwatch-cli/cmd"

func main() {
	cmd.Execute()
}
