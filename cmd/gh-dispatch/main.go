package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gh-dispatch/gh-dispatch/pkg/cli"
	"github.com/gh-dispatch/gh-dispatch/pkg/console"
)

// Set by the release build with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersionInfo(version)

	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
