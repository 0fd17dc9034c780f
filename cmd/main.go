package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/config"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		lg.Fatal("init database", "error", err)
	}

	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.SetupRouter(cfg, db, lg)
	lg.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", "error", err)
	}
}
