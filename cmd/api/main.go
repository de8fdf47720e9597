package main

import (
	"log"

	"mealplan-backend/internal/shared/config"
	"mealplan-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("meal plan API listening on %s (env=%s, prefs store=%s)", addr, cfg.Env, cfg.PrefsStoreType)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
