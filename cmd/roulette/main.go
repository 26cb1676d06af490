package main

import (
	"log"
	"roulette_backend/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("app stopped: %v", err)
	}
}
