package main

import "github.com/betterleaks/rgrep/cmd"

func main() {
	cmd.Execute()
}
