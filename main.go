package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"velvessa/m/internal/api"
	"velvessa/m/internal/config"
	"velvessa/m/internal/database"
	"velvessa/m/internal/migrations"
	"velvessa/m/internal/notify"
	"velvessa/m/internal/store"
	"velvessa/m/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)

	st := store.Open(store.NewKV(db))
	svc := workflow.New(st, notify.Simulated{Delay: time.Duration(cfg.SMSDelayMS) * time.Millisecond})
	handler := api.New(svc, cfg.Secret)

	log.Printf("Velvessa console server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
