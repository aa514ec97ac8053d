package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Session        SessionConfig
	Recommendation RecommendationConfig
}

type ServerConfig struct {
	Host string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Type string // "sqlite" or "postgres"
	DSN  string
	Path string // For SQLite: file path
}

type SessionConfig struct {
	Secret string
}

// RecommendationConfig holds the fixed policy constants of the
// rule-based recommendation engine. Constructed once at startup
// and passed into the engine; nothing reads these from the
// environment after that.
type RecommendationConfig struct {
	WeakMasteryThreshold  float64 // below this a topic counts as weak
	VideoMasteryThreshold float64 // worst topic below this gets a video
	MaxWeakTopics         int     // weak topics considered per run
	PracticePerTopic      int     // practice questions per weak topic
	ActiveLimit           int     // recommendations returned to the client
	RecentAttemptWindow   int     // attempts inspected for weak-topic history
	Seed                  int64   // RNG seed; 0 means time-based
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbType := getEnv("DB_TYPE", "sqlite") // Default to SQLite for development
	dsn, dbPath := buildDSN(dbType)

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Type: dbType,
			DSN:  dsn,
			Path: dbPath,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-prod"),
		},
		Recommendation: DefaultRecommendationConfig(),
	}, nil
}

// DefaultRecommendationConfig returns the production policy constants.
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		WeakMasteryThreshold:  0.6,
		VideoMasteryThreshold: 0.5,
		MaxWeakTopics:         3,
		PracticePerTopic:      2,
		ActiveLimit:           6,
		RecentAttemptWindow:   3,
		Seed:                  getEnvInt64("RECOMMENDATION_SEED", 0),
	}
}

func buildDSN(dbType string) (string, string) {
	if dbType == "postgres" {
		// PostgreSQL configuration
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "learnpath")
		sslMode := getEnv("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
		return dsn, ""
	}

	// SQLite configuration (default for development)
	dbPath := getEnv("SQLITE_PATH", "./data/learnpath.db")
	dsn := dbPath + "?mode=rwc&cache=shared&timeout=5000"
	return dsn, dbPath
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
