package main

import "github.com/emrgen/cataviz/cmd"

func main() {
	cmd.Execute()
}
