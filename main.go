package main

import (
	"log"
	"os"

	"QueryDoc/be/internal/chat"
	"QueryDoc/be/internal/config"
	"QueryDoc/be/internal/health"
	"QueryDoc/be/internal/llm"
	"QueryDoc/be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath, "config/.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Initialize services. One provider instance serves all requests.
	provider := llm.NewAnthropicProvider(cfg.Anthropic.APIKey)
	chatService := chat.NewChatService(provider, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	chatController := chat.NewChatController(chatService)
	chatController.RegisterRoutes(router)

	healthController := health.NewController()
	healthController.RegisterRoutes(router)

	// Start server
	log.Printf("QueryDoc backend running on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
