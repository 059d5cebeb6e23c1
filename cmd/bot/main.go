package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-jobfinder-bot/internal/aggregator"
	"go-jobfinder-bot/internal/config"
	"go-jobfinder-bot/internal/database"
	"go-jobfinder-bot/internal/scraper/glassdoor"
	"go-jobfinder-bot/internal/scraper/indeed"
	"go-jobfinder-bot/internal/scraper/linkedin"
	"go-jobfinder-bot/internal/scraper/remoteok"
	"go-jobfinder-bot/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Println("🔧 Config loaded.")

	//open database, create schema if absent
	repo, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer repo.Close()
	log.Printf("💾 Database ready at %s", cfg.DBPath)

	//one shared client for all extractors
	client := &http.Client{Timeout: cfg.HTTPTimeout()}

	//registry order is also the merge order for results
	agg := aggregator.New(
		indeed.New(client),
		glassdoor.New(client),
		remoteok.New(client),
		linkedin.New(client),
	)

	//init telegram bot
	bot, err := telegram.NewBot(cfg.TelegramToken, agg, repo)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("🚀 Starting job aggregator bot...")
	bot.Run(ctx)
	log.Println("🏁 Bot stopped.")
}
