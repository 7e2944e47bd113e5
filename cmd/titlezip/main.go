package main

import "github.com/mydehq/titlezip/internal/cli"

func main() {
	cli.Execute()
}
