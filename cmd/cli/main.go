package main

import "profilehub/cmd/cli/command"

func main() {
	command.Execute()
}
