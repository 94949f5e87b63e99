// Command life opens an interactive Conway's Game of Life window.
package main

import "lifegrid/internal/cli"

func main() {
	cli.Execute()
}
