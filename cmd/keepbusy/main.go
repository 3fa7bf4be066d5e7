package main

import (
	"context"
	"os"

	"github.com/stigoleg/keep-busy/internal/cli"
)

const appVersion = "2.0.0"

func main() {
	os.Exit(cli.Execute(context.Background(), appVersion))
}
