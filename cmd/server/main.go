package main

import (
	"log"

	"github.com/joho/godotenv"

	"synctech/internal/app"
)

// @title SYNC TECH Admin API
// @version 1.0
// @description Lead generation, outreach and business administration backend.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	app.Run()
}
