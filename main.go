package main

import "github.com/KaramelBytes/econlab-cli/cmd"

func main() {
	cmd.Execute()
}
