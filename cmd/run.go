package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"moodbot/api"
	"moodbot/bot"
	"moodbot/chat"
	"moodbot/config"
	"moodbot/events"
	"moodbot/ledger"
	"moodbot/metrics"
	"moodbot/router"
	"moodbot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting moodbot...")

	// Load configuration
	cfg := config.Get()

	// Register metrics collectors
	metrics.Init()

	// Initialize event bus and its subscribers
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	wireEventHandlers(eventBus)

	// Initialize the ledger and game services
	log.Println("Initializing game engine...")
	coins := ledger.New(cfg.StartingBalance, eventBus)
	rng := service.NewSource(time.Now().UnixNano())
	gamesService := service.NewGamesService(coins, rng)
	blackjackService := service.NewBlackjackService(coins, rng)

	// Initialize the chat fallback
	var responder chat.Responder = chat.Unavailable{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to initialize chat responder: %w", err)
		}
		defer gemini.Close()
		responder = gemini
		log.Printf("Chat fallback using model %s", cfg.GeminiModel)
	} else {
		log.Println("GEMINI_API_KEY not set; chat fallback disabled")
	}

	// Command router shared by every surface
	cmds := router.New(coins, gamesService, blackjackService, responder)

	// Start the HTTP server
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(cmds, coins),
	}
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Initialize the optional Discord surface
	var discordBot *bot.Bot
	if cfg.DiscordToken != "" {
		log.Println("Initializing Discord bot...")
		var err error
		discordBot, err = bot.New(bot.Config{Token: cfg.DiscordToken}, cmds)
		if err != nil {
			return fmt.Errorf("failed to initialize Discord bot: %w", err)
		}
	}

	// Wait for context cancellation or a server failure
	log.Printf("moodbot is running in %s mode...", cfg.Environment)
	select {
	case err := <-serverErr:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	if discordBot != nil {
		if err := discordBot.Close(); err != nil {
			log.Printf("Error closing Discord bot: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Shutdown completed")
	return nil
}
