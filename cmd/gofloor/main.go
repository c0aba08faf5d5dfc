package main

import "github.com/philipparndt/gofloor/cmd"

func main() {
	cmd.Execute()
}
