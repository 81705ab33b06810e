package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calebcase/oops"

	"github.com/govalues/fixedpoint/internal/config"
	"github.com/govalues/fixedpoint/internal/logging"
	"github.com/govalues/fixedpoint/internal/rpn"
)

func main() {
	// run reports its errors on stderr
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	usage := `fpcalc - fixed-point decimal calculator

Usage:
  fpcalc [--precision N] [--round N | --truncate N] EXPR...

EXPR is written in prefix notation, operators first:
  fpcalc '*' 10 + 1.23 4.56      # (1.23 + 4.56) * 10
  fpcalc --round 2 / 1 3         # 1 / 3 rounded to 2 digits
  fpcalc + 0xde0b6b3a7640000 1   # raw on-chain amounts are 0x-prefixed

Environment:
  FPCALC_PRECISION, FPCALC_LOG_LEVEL, FPCALC_LOG_FORMAT (also read from .env)

Flags:`
	fmt.Fprintln(w, usage)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("fpcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return oops.New("no expression")
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	ctx = logging.WithLogger(ctx, logger)

	expr := strings.Join(fs.Args(), " ")
	logger.Debug("evaluating", "expr", expr, "precision", cfg.Precision)

	result, err := rpn.New(cfg.Precision).Evaluate(ctx, expr)
	if err != nil {
		logger.Error("evaluation failed", "expr", expr, "error", err)
		return err
	}

	fmt.Fprintln(stdout, cfg.Format(result))
	return nil
}
