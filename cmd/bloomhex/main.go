// Command bloomhex builds, queries and inspects hex encoded Bloom filters.
//
//	bloomhex build [-p 0.001] [-hash murmur3] [-in elements.txt] [-store dir -name n]
//	bloomhex query [-hash murmur3] (-filter f.hex | -store dir -name n) value...
//	bloomhex inspect (-filter f.hex | -store dir -name n)
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := parseConfig(args, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "bloomhex: %v\n", err)
		return 2
	}

	logger.New(cfg.LogLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("bloomhex")

	app := &app{cfg: cfg, log: log, in: in, out: out}
	if err := app.dispatch(ctx); err != nil {
		fmt.Fprintf(errOut, "bloomhex %s: %v\n", cfg.Command, err)
		return 1
	}
	return 0
}
