package main

import "github.com/vrsandeep/mango-marks/internal/cli"

func main() {
	cli.Execute()
}
