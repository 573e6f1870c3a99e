package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the collector configuration, loaded from the environment
// with an optional .env file in front
type Config struct {
	DBPath     string
	BufferSize int

	MapsURL  string
	Headless bool

	NominatimURL   string
	GeocodeTimeout time.Duration
	UserAgent      string

	// BoundaryPath optionally points at a JSON vertex file; empty means the
	// built-in San Francisco perimeter
	BoundaryPath string

	// Cycles caps the collection loop; 0 runs until interrupted
	Cycles     int
	CycleDelay time.Duration

	// MaxCycleFailures is how many consecutive failed cycles trigger a
	// browser session restart
	MaxCycleFailures int

	// StatusPort enables the diagnostic API when set (e.g. ":8080");
	// empty leaves it off
	StatusPort string
	Debug      bool
}

// Load reads configuration from .env (if present) and the environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:           getEnv("DB_PATH", "./data/trips.db"),
		BufferSize:       getEnvInt("BUFFER_SIZE", 100),
		MapsURL:          getEnv("MAPS_URL", "https://www.google.com/maps/dir/"),
		Headless:         getEnvBool("HEADLESS", true),
		NominatimURL:     getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocodeTimeout:   getEnvDuration("GEOCODE_TIMEOUT", 10*time.Second),
		UserAgent:        getEnv("GEOCODE_USER_AGENT", "transit-sampler"),
		BoundaryPath:     getEnv("BOUNDARY_PATH", ""),
		Cycles:           getEnvInt("CYCLES", 0),
		CycleDelay:       getEnvDuration("CYCLE_DELAY", time.Second),
		MaxCycleFailures: getEnvInt("MAX_CYCLE_FAILURES", 3),
		StatusPort:       getEnv("STATUS_PORT", ""),
		Debug:            getEnvBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
