package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/scanshelf/scanshelf-backend/internal/config"
	"github.com/scanshelf/scanshelf-backend/internal/db"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"github.com/scanshelf/scanshelf-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Item{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
