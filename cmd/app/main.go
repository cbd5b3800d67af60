package main

import (
	"seatsafe/config"
	"seatsafe/di"
	"seatsafe/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
