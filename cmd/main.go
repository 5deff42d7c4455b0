package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/storage"
)

func main() {
	cfg := config.Load()

	var store storage.Store = storage.Disabled{}
	db, err := cfg.ConnectDB()
	if err != nil {
		// persistence is optional: generation still works without it
		log.Printf("database unavailable, continuing without persistence: %v", err)
	} else if db != nil {
		gs, err := storage.NewGormStore(db)
		if err != nil {
			log.Printf("document store migration failed, continuing without persistence: %v", err)
		} else {
			store = gs
		}
	}

	var vision services.Vision = services.MockVision{}
	if cfg.VisionProvider == "rekognition" {
		rek, err := services.NewRekognitionVision(cfg.AWSRegion)
		if err != nil {
			log.Fatalf("rekognition vision init failed: %v", err)
		}
		vision = rek
	}

	r := routes.SetupRouter(routes.Deps{
		Config:  cfg,
		Store:   store,
		Vision:  vision,
		Product: services.MockProductLookup{},
	})
	log.Fatal(r.Run(":" + cfg.Port))
}
