// Command server runs the flashdeck dashboard HTTP API.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	// Embedded zoneinfo so progress.timezone resolves on minimal images.
	_ "time/tzdata"

	"github.com/heartmarshall/flashdeck-backend/internal/app"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
)

func main() {
	envHelp := pflag.Bool("env-help", false, "list configuration environment variables and exit")
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before configuration")
	pflag.Parse()

	if *envHelp {
		config.WriteUsage(os.Stdout)
		return
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load %s: %v", *envFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
