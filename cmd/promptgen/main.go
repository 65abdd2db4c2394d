package main

import (
	"github.com/tacogips/promptgen/internal/cli"
)

func main() {
	cli.Execute()
}
