package main

import "github.com/nfrund/pagetitle/cmd/title-cli/cmd"

func main() {
	cmd.Execute()
}
