package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godilite/gradegen/internal/cli"
	"github.com/godilite/gradegen/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.NewRootCommand(cfg, logger), os.Stdout, os.Stderr)

	stop()
	_ = logger.Sync()
	os.Exit(code)
}
