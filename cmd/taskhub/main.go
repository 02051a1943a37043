package main

import (
	"log"

	"taskhub/cmd/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the OS environment wins either way.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
