package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // time parses timeouts and resolves the time zone

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env            string         // application environment (e.g. "development", "production")
	Port           string         // HTTP port to listen on
	DBUser         string         // database username
	DBPass         string         // database password (optional)
	DBHost         string         // database host address
	DBPort         string         // database port number
	DBName         string         // database name
	AutoMigrate    bool           // apply the embedded schema on start
	QueryTimeout   time.Duration  // per-request store timeout
	LogLevel       string         // echo logger level: debug, info, warn, error
	MediaURL       string         // prefix for stored seat-map images
	Location       *time.Location // zone in which "today" is evaluated
	MetricsEnabled bool           // expose /metrics
	AMQPURL        string         // broker for cache invalidation; empty disables the consumer
	InvalidationQ  string         // queue carrying catalog change notifications
}

// Load reads configuration values from environment variables, after
// merging an optional .env file, and returns a Config.  Required variables
// are enforced by must() and missing values cause the program to exit with
// a fatal log message.
func Load() Config {
	_ = godotenv.Load() // .env is optional; real env vars win

	return Config{
		Env:            envStr("APP_ENV", "development"),
		Port:           envStr("APP_PORT", "8000"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		AutoMigrate:    envBool("DB_AUTO_MIGRATE", false),
		QueryTimeout:   envDur("DB_QUERY_TIMEOUT", 5*time.Second),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		MediaURL:       envStr("MEDIA_URL", "/media/"),
		Location:       mustLocation("TIME_ZONE"),
		MetricsEnabled: envBool("METRICS_ENABLED", true),
		AMQPURL:        amqpURL(),
		InvalidationQ:  envStr("INVALIDATION_QUEUE", "catalog.changed"),
	}
}

// amqpURL prefers AMQP_URL and falls back to RABBITMQ_URL.
func amqpURL() string {
	if v := os.Getenv("AMQP_URL"); v != "" {
		return v
	}
	return os.Getenv("RABBITMQ_URL")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustLocation resolves an IANA zone name, UTC when unset.
func mustLocation(key string) *time.Location {
	name := envStr(key, "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("invalid time zone for %s: %q", key, name)
	}
	return loc
}

// Now returns the current instant in the configured zone.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
