package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if err := newRootCommand(logger.Sugar()).Execute(); err != nil {
		os.Exit(1)
	}
}
