package main

import "github.com/openworkbench/themed/internal/cli"

func main() {
	cli.Execute()
}
