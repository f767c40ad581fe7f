package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/myshelf/shelf/app"
	"github.com/Astemirdum/myshelf/shelf/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title MyShelf API
// @version 1.0
// @description Book rental: catalog, cart, rentals, notifications and reviews.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
