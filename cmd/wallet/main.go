// Package main is the wallet command line: import transactions from a node, build
// and broadcast payments and sweep single outputs.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := &app{ctx: ctx, logger: logger}
	parser := flags.NewParser(&app.options, flags.Default)
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"import", "Import a transaction", "Fetch a transaction from the node and classify it against the wallet key.", &importCommand{app: app}},
		{"fee", "Estimate a payment fee", "Select coins for a payment and print the fee it would pay.", &feeCommand{app: app}},
		{"send", "Build a payment", "Build and sign a payment from stored coins, optionally broadcasting it.", &sendCommand{app: app}},
		{"sweep", "Sweep one output", "Spend a single output paying to the wallet key entirely to an address.", &sweepCommand{app: app}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			logger.Fatal("failed to register command", zap.String("command", c.name), zap.Error(err))
		}
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("wallet command failed", zap.Error(err))
	}
}

type app struct {
	ctx     context.Context
	logger  *zap.Logger
	options options
}
