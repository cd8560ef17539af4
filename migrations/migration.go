package main

import (
	"campus-market/config"
	"campus-market/infra"
	"campus-market/models"
)

func main() {
	log := infra.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	log.Info("Migration complete")
}
