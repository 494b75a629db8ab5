package main

import (
	"github.com/igdimer/currency-converter/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currency Converter API
// @version 1.0
// @description Proxy API for currency rates with favorites and JWT auth
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application terminated")
	}
}
