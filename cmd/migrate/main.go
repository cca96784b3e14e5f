package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/repository"
)

const usage = `usage: migrate [flags] <command> [args]

commands: up, up-by-one, up-to VERSION, down, down-to VERSION, redo, reset, status, version
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	dsn := fs.String("dsn", "", "postgres DSN (defaults to the POSTGRES_* environment)")
	timeout := fs.Duration("timeout", time.Minute, "overall timeout")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	if *dsn == "" {
		_ = godotenv.Load(".env")
		var db config.DB
		if err := envconfig.Process("", &db); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
		*dsn = db.DSN()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	return repository.Migrate(ctx, *dsn, fs.Arg(0), fs.Args()[1:]...)
}
