package main

import (
	"context"
	"fmt"

	"github.com/nconklindev/platesplit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Main(context.Background(), fmt.Sprintf("platesplit %s\ncommit: %s\nbuilt: %s", version, commit, date))
}
