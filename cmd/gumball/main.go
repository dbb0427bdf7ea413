package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gumball-machine/internal/app"
	"gumball-machine/internal/config"
	"gumball-machine/internal/logging"
	"gumball-machine/internal/metrics"

	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "optional path to config file")
	envPath := flag.String("env", ".env", "path to .env file")
	printMetrics := flag.Bool("metrics", false, "print collected metrics after the demo")
	flag.Parse()

	if err := config.LoadEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *envPath, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log)
	defer func() { _ = log.Sync() }()
	log.Info("config loaded", zap.String("path", *configPath))

	prom := metrics.NewPrometheus()
	application, err := app.New(cfg, log, prom.Metrics)
	if err != nil {
		log.Error("failed to initialize app", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.RunDemo(ctx, os.Stdout); err != nil {
		log.Error("demo terminated", zap.Error(err))
		os.Exit(1)
	}
	if *printMetrics {
		if err := writeMetrics(os.Stdout, prom); err != nil {
			log.Error("failed to write metrics", zap.Error(err))
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func writeMetrics(w io.Writer, prom *metrics.Prometheus) error {
	families, err := prom.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
