package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rakibul-dev/teastall/internal/app"
	"github.com/rakibul-dev/teastall/internal/config"
)

func main() {
	var (
		configPath string
		migrate    bool
	)
	flag.StringVar(&configPath, "config", "", "path to the YAML config file")
	flag.BoolVar(&migrate, "migrate", false, "run database migrations and exit")
	flag.Parse()

	// A missing .env is fine; environment overrides are optional.
	_ = godotenv.Load()

	cfg, err := config.Load(config.ResolveConfigPath(configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "teastall: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := config.AppConfig{ConfigPath: configPath}
	if migrate {
		if errMigrate := app.Migrate(ctx, appCfg); errMigrate != nil {
			log.Fatalf("migrate: %v", errMigrate)
		}
		log.Info("migrations applied")
		return
	}

	if errRun := app.RunServer(ctx, appCfg); errRun != nil {
		log.Fatalf("server: %v", errRun)
	}
}

func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, errParse := log.ParseLevel(cfg.Log.Level)
	if errParse != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Log.File == "" {
		return
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
}
