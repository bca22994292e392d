package main

import (
	"github.com/fecforge/bchkit/cmd/bchkit/cmd"
)

func main() {
	cmd.Execute()
}
