package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"fpt-assistant/core/internal/api"
	"fpt-assistant/core/internal/config"
	"fpt-assistant/core/internal/database"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/playground"
	"fpt-assistant/core/internal/repository"
	"fpt-assistant/core/internal/service"
	"fpt-assistant/core/internal/store"
)

// App holds the wired components of the assistant core.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Server *http.Server
	Agents *service.AgentService
}

// NewApp opens the preferences database and wires every service and handler.
// It does not contact the agent endpoint.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	client := playground.NewClient(cfg.APIBaseURL, cfg.APIPrefix, cfg.RequestTimeout)
	st := store.New()
	feed := notify.NewFeed(cfg.NotificationLimit)

	identityService := service.NewIdentityService(repo)
	sessionService, err := service.NewSessionService(client, st, feed, identityService, cfg.HistoryCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	chatService := service.NewChatService(client, st, identityService, sessionService, cfg.StreamIdleTimeout)
	agentService := service.NewAgentService(client, st, feed, sessionService, chatService, cfg.DefaultAgentID)

	router := api.NewRouter(api.Handlers{
		Chat:    api.NewChatHandler(chatService),
		Agent:   api.NewAgentHandler(agentService),
		Session: api.NewSessionHandler(sessionService, agentService),
		User:    api.NewUserHandler(identityService, feed),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, DB: db, Server: server, Agents: agentService}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initializePlayground(ctx, app.Agents, cfg.RequestTimeout)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// initializePlayground loads agents and sessions once at startup. An
// unreachable endpoint is logged and left for POST /playground/init to retry.
func initializePlayground(ctx context.Context, agents *service.AgentService, timeout time.Duration) {
	slog.Info("Checking agent playground endpoint...")
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	state := agents.Initialize(ctx)
	if !state.EndpointActive {
		slog.Warn("Agent playground endpoint is not reachable; continuing without agents.")
		return
	}
	slog.Info("Agent playground is ready.", "agents", len(state.Agents), "selected_agent", state.SelectedAgentID)
}
