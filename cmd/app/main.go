package main

import (
	"dinedesk/config"
	"dinedesk/di"
	"dinedesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
