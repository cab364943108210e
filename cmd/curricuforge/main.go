package main

import (
	"os"

	"github.com/yigit/curricuforge/internal/cli"
)

var version = "0.1.0"

func main() {
	os.Exit(cli.NewApp().Execute(version, os.Args[1:]))
}
