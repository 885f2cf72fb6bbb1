package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/tams-go/internal/infrastructure/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}
	root, container, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer container.Close()

	if err := root.ExecuteContext(ctx); err != nil {
		if !cli.AlreadyReported(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func isVerbose() bool {
	v := os.Getenv("TAMS_DEBUG")
	return v == "1" || strings.EqualFold(v, "true")
}
