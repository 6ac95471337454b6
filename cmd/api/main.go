package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/techq/techq-be/internal/config"
	"github.com/techq/techq-be/internal/database"
	"github.com/techq/techq-be/internal/handler"
	"github.com/techq/techq-be/internal/repository"
	"github.com/techq/techq-be/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logStore, closer, err := openLogStore(cfg.LogStore)
	if err != nil {
		logger.Fatalf("Failed to open request log store: %v", err)
	}
	defer closer.Close()
	logger.Printf("Successfully connected to %s request log store", cfg.LogStore.Driver)

	httpClient := service.NewUpstreamHTTPClient(cfg.Upstream.Timeout)

	chatService := service.NewChatService(service.NewOpenAIClient(cfg.Chat, httpClient), cfg.Chat)

	sender, err := service.NewResendSender(cfg.Email, httpClient)
	if err != nil {
		logger.Fatalf("Failed to create email sender: %v", err)
	}
	contactService := service.NewContactService(sender, cfg.Email)

	deps := handler.Dependencies{
		Chat:           chatService,
		Contact:        contactService,
		Limiter:        service.NewRateLimiter(logStore, logger),
		LogStore:       logStore,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	}
	if cfg.Auth.ClientJWTSecret != "" {
		deps.Verifier = service.NewTokenVerifier(cfg.Auth.ClientJWTSecret)
		logger.Println("Client token check enabled")
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		logger.Println("ALLOWED_ORIGINS is empty, browsers will be refused by every endpoint")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.SetupRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Printf("Server starting on port %s", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Cannot run server on port %s: %v", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("Shut down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Println("Server successfully shut down")
}

// openLogStore connects the configured backend and returns the repository
// together with the handle to close on shutdown.
func openLogStore(cfg config.LogStoreConfig) (repository.IRequestLogRepository, io.Closer, error) {
	if cfg.Driver == config.DriverRedis {
		client, err := database.ConnectRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisRequestLogRepository(client), client, nil
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db, cfg.Driver); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repository.NewRequestLogRepository(db), db, nil
}
