package main

import "flowt.dev/flowt/cmd"

func main() {
	cmd.Execute()
}
