package config

import "os"

type Environment struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
}

// Load snapshots the process environment. Call it after godotenv has run
// so .env values are visible.
func Load() Environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000" // fallback port for local development
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "mindmaps.db"
	}

	return Environment{
		Port:        port,
		DatabaseURL: os.Getenv("DB_URL"),
		SQLitePath:  sqlitePath,
	}
}
