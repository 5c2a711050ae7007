package main

import "github.com/RogueRocketeer/gofluid/cmd"

func main() {
	cmd.Execute()
}
