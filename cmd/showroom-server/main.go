package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/internal"
	"github.com/kiltia/showroom/pkg/log"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}

	if err := internal.RunServer(cfg, logger); err != nil {
		logger.Fatal("server failed", log.L().Tag(log.LogTagServer).Error(err))
	}
}
