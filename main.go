package main

import "github.com/sw33tLie/bocheck/cmd"

func main() {
	cmd.Execute()
}
