package main

import "github.com/lockmend/lockmend/cmd"

func main() {
	cmd.Execute()
}
