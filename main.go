package main

import "github.com/Genzer/bitbucklet/cmd"

func main() {
	cmd.Execute()
}
