// Package main starts the interactive library client.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	librariumcmd "github.com/openshelf/librarium/internal/cmd/librarium"
)

func main() {
	cfg, err := librariumcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[LIBRARIUM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := librariumcmd.Run(ctx, cfg); err != nil && ctx.Err() == nil {
		log.Fatalf("client exited: %v", err)
	}
}
