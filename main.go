package main

import "github.com/gaurav-prasanna/wikichunk/cmd"

func main() {
	cmd.Execute()
}
