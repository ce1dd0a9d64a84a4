package main

import "github.com/dl/docsearch/internal/cli"

func main() {
	cli.Main()
}
