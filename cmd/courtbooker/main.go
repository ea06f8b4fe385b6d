package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/app"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
