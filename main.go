package main

import (
	"log"

	"essay_coach_backend/internal/app"
	"essay_coach_backend/internal/config"
	"essay_coach_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
