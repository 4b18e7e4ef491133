package main

import "github.com/ambiyansyah-risyal/anuvada/internal/cli"

func main() {
	cli.Execute()
}
