package main

import (
	"os"

	"github.com/tbruckner/xkcd-wallpaper/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
