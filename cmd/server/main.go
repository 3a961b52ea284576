package main

import (
	"log"
	"net/http"
	"os"

	"fleet_office/internal/config"
	"fleet_office/internal/logger"
	"fleet_office/internal/middleware"
	"fleet_office/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router (recovery + request logging attach inside)
	r := routes.SetupRouter(config.DB)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
