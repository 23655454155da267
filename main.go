package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/fanlog/cli"
	"github.com/ardnew/fanlog/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", slog.Any("error", err)) // errors provide LogValue
		os.Exit(1)
	}
}
