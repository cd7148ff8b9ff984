package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/app"
	"github.com/i7k15/ai-study-advisor/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to the yaml config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg, l); err != nil {
		l.Fatal("app stopped", zap.Error(err))
	}
	l.Info("app stopped")
}
