package main

import "bitbucket.org/Amartha/go-savings-engine/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
