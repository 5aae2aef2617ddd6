package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/bot"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/bot/handlers"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/config"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/database"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/jobs"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/pending"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/repository"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/scheduler"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/timezone"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/weather"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate required config
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Create Telegram API client
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram API: %v", err)
	}
	api.Debug = cfg.Debug

	// Create repositories
	todoRepo := repository.NewTodoRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	repos := &handlers.Repositories{
		User:     repository.NewUserRepository(db),
		Location: repository.NewLocationRepository(db),
		Todo:     todoRepo,
		Reminder: reminderRepo,
	}

	// Timezone resolver loads its embedded polygon data up front
	resolver, err := timezone.NewResolver()
	if err != nil {
		log.Fatalf("Failed to initialize timezone resolver: %v", err)
	}

	sched := scheduler.New()
	defer sched.Stop()
	pendings := pending.NewIndex()

	notifier := jobs.NewNotifier(api, sched, todoRepo, reminderRepo, pendings)

	// Reschedule the jobs of every todo and reminder that survived a restart
	if err := notifier.Reload(ctx); err != nil {
		log.Fatalf("Failed to reload scheduled jobs: %v", err)
	}

	h := handlers.New(api, repos, resolver, notifier, pendings, weather.NewClient())
	b := bot.New(api, h)

	if err := b.SetCommands(); err != nil {
		log.Printf("Failed to register command menu: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	log.Println("Starting bot...")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
}
