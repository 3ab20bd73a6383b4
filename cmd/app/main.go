package main

import (
	"apelcal/config"
	"apelcal/di"
	_ "apelcal/docs"
	"apelcal/shared/logger"
)

// @title Apelcal API
// @version 1.0
// @description Appointment booking backend for a single-operator business.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
