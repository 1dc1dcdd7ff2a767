package main

import (
	"fmt"
	"os"

	"github.com/merapar/dynstring/command"
)

func main() {
	err := command.Main(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
