package main

import "geodna/internal/cli"

func main() {
	cli.Execute()
}
