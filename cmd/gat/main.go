package main

import (
	"os"

	cmd "github.com/MrSnakeDoc/gat/internal"
	"github.com/MrSnakeDoc/gat/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.LogError(err.Error())
		os.Exit(1)
	}
}
