package main

import "peerdiff/cmd"

func main() {
	cmd.Execute()
}
