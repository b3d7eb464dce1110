package main

import (
	"fmt"
	"os"

	"github.com/yuzu875641/phpbbs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
