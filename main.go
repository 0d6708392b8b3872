package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/openexpo/booth-feedback/cliparse"
	"github.com/openexpo/booth-feedback/db"
	"github.com/openexpo/booth-feedback/genai"
	"github.com/openexpo/booth-feedback/middleware"
	"github.com/openexpo/booth-feedback/router"
)

func main() {
	// Load .env before reading configuration; missing file is fine
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (bounded ping inside)
	dbConn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Generative AI client. An empty key is tolerated here: the feedback
	// endpoints stay up and only AI-backed requests fail.
	if cfg.GenAIAPIKey == "" {
		slog.Warn("GENAI_API_KEY not set; audio and summarize endpoints will fail")
	}
	client := genai.NewClient(cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAIBaseURL)
	summarizer, err := genai.NewSummarizer(cfg.SummaryStrategy, client)
	if err != nil {
		slog.Error("invalid summary strategy", "error", err)
		os.Exit(1)
	}
	slog.Info("Summary strategy", "strategy", cfg.SummaryStrategy)

	// Create router
	mux := router.NewRouter(dbConn, cfg, client, summarizer)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
