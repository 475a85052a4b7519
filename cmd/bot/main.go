package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/common/uuid"
	"github.com/KirkDiggler/rollengine/internal/config"
	"github.com/KirkDiggler/rollengine/internal/dice"
	"github.com/KirkDiggler/rollengine/internal/handlers/discord"
	"github.com/KirkDiggler/rollengine/internal/repositories/restriction"
	rollService "github.com/KirkDiggler/rollengine/internal/services/roll"
	"github.com/KirkDiggler/rollengine/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatal(err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	clk := clock.New()

	restrictionRepo, err := restriction.NewRedis(&restriction.Config{
		RedisClient: redisClient,
		Clock:       clk,
	})
	if err != nil {
		log.Fatalf("Failed to create restriction repository: %v", err)
	}

	// Initialize the roll engine
	engine, err := rollService.New(&rollService.Config{
		Dice: dice.New(&dice.Config{Seed: cfg.RollSeed}),
	})
	if err != nil {
		log.Fatalf("Failed to create roll service: %v", err)
	}

	pipeline, err := worker.New(&worker.Config{
		Engine:    engine,
		Clock:     clk,
		QueueSize: cfg.QueueSize,
	})
	if err != nil {
		log.Fatalf("Failed to create roll pipeline: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Pipeline:      pipeline,
		Restrictions:  restrictionRepo,
		IDs:           uuid.New(),
		Clock:         clk,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := pipeline.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error stopping roll pipeline: %v", err)
	}

	log.Println("Bot has been shut down")
}
