package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"experiment-analytics/internal/app"
	"experiment-analytics/internal/shared/configs"
	"experiment-analytics/internal/shared/svcerrors"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the YAML configuration")
	rerender := flag.String("rerender", "", "run id of a stored report to render again instead of analysing the logs")
	flag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(svcerrors.ExitCodeInvalidArgument)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(svcerrors.ExitCodeInternal)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var result *app.RunResult
	if *rerender != "" {
		result, err = application.Rerender(ctx, *rerender)
	} else {
		result, err = application.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		stop()
		os.Exit(svcerrors.ExitCodeOf(err))
	}

	if result.ReportKey != "" {
		fmt.Printf("report: %s\n", result.ReportKey)
	}
	for _, key := range result.ChartKeys {
		fmt.Printf("chart:  %s\n", key)
	}
}
