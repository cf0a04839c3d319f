package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/prime399/study-flow-kiro-sub001/config"
	"github.com/prime399/study-flow-kiro-sub001/helpers"
	"github.com/prime399/study-flow-kiro-sub001/routes"
)

func main() {

	log.Println("Starting study performance service...")

	cfg := config.Load()

	key := cfg.JWTSecret
	if key == "" {
		key = config.GenerateRandomKey()
		log.Println("JWT_SECRET not set, generated an ephemeral signing key")
	}
	helpers.SetJWTKey(key)

	//Init gin router
	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api)

	addr := ":" + cfg.Port
	log.Printf("Server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
