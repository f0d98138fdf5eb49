package main

import "github.com/agentbridge/agentbridge/cmd"

func main() {
	cmd.Execute()
}
