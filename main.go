package main

import (
	"context"
	"log"

	"library_lending/app"
	"library_lending/config"
	"library_lending/db"
	"library_lending/routes"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer application.Close()

	if cfg.Seed {
		if err := db.Seed(context.Background(), application.DB); err != nil {
			log.Fatalf("seed: %v", err)
		}
		application.Log.Info("seed catalog loaded")
	}

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	application.Log.Info("listening", "port", cfg.Port)
	_ = r.Run(":" + cfg.Port)
}
