package main

import (
	"hospital-management-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize hospital management API")
	}

	// Blocks until SIGINT/SIGTERM, then drains the server and closes connections.
	app.Run()
}
