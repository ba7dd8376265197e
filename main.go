package main

import "cellmap/internal/cli"

func main() {
	cli.Execute()
}
