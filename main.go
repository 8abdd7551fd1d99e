package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/config"
	"github.com/grid-watch/api-go/middleware"
	"github.com/grid-watch/api-go/routes"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db := config.InitDB()

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Initialize routes
	routes.SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
