package main

import "github.com/jsxkit/jsxkit/cmd"

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
