package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/todo/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "todo failed: %v\n", err)
		os.Exit(1)
	}
}
