package main

import "verge/cmd/verge-cli/cmd"

func main() {
	cmd.Execute()
}
