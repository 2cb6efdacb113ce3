package main

import (
	"net/http"
	"os"

	"github.com/arvindkc/mymindmap-api/config"
	"github.com/arvindkc/mymindmap-api/handlers"
	"github.com/arvindkc/mymindmap-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env if present; deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg(".env file not loaded")
	}

	env := config.Load()
	if err := config.Connect(env); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	// Mind map
	mux.HandleFunc("POST /mindmaps/{$}", DBHandler.CreateMindMap)
	mux.HandleFunc("GET /mindmaps/{$}", DBHandler.ListMindMaps)
	mux.HandleFunc("GET /mindmaps/{id}", DBHandler.GetMindMapByID)
	mux.HandleFunc("PATCH /mindmaps/{id}", DBHandler.UpdateMindMapByID)
	mux.HandleFunc("DELETE /mindmaps/{id}", DBHandler.DeleteMindMapByID)
	mux.HandleFunc("GET /mindmaps/{id}/export/sql", DBHandler.ExportMindMapSQL)

	// Liveness
	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.HandleFunc("GET /health", handlers.Health)

	// Development CORS: everything is allowed.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(middleware.RequestLogger(logger)(mux))

	serverAddr := "0.0.0.0:" + env.Port
	logger.Info().Str("addr", serverAddr).Msg("server listening")
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
