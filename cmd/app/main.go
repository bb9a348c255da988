package main

import (
	"hms/config"
	"hms/di"
	"hms/shared/logger"
)

// @title Hotel Management Service API
// @version 1.0
// @description Backend service for rooms, guests, bookings and payments.
// @BasePath /
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
