package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kwencafe/website/admin"
	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/config"
	"github.com/kwencafe/website/router"
	"github.com/kwencafe/website/session"
	"github.com/kwencafe/website/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := session.OpenStore(cfg.SessionPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open session store: %v", err)
	}
	sess, err := session.NewManager(store)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to init session: %v", err)
	}

	api := apiclient.NewClient(cfg.APIBaseURL, cfg.MediaOrigin)
	console := admin.NewConsole(api, sess)

	r := router.SetupRouter(api, console, sess, []byte(cfg.CookieSecret))

	utils.InfoLogger.Printf("Café API at %s", cfg.APIBaseURL)
	utils.InfoLogger.Printf("Listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
