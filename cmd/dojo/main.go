package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BuzzLyutic/dojo/internal/cli"
	"github.com/BuzzLyutic/dojo/internal/config"
	"github.com/BuzzLyutic/dojo/internal/logger"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем логгер
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	code := cli.Run(ctx, os.Args[1:], cli.Env{
		Config: cfg,
		Logger: log,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	stop()
	_ = log.Sync()
	os.Exit(code)
}
