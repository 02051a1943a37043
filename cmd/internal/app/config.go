package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// DatabaseURL selects the storage variant: Postgres when set, the
	// in-memory stores otherwise. Chosen once here; business logic never
	// branches on storage kind.
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	// If true, /readyz returns 503 unless the database is configured and
	// reachable.
	ReadinessRequireDB bool

	// SweepInterval drives the periodic expired refresh-token sweep.
	SweepInterval time.Duration

	// Login throttling policy for the HTTP boundary. The session core never
	// consults these; they ride along in config so the transport layer and
	// the core are tuned in one place.
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("TASKHUB_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel: EnvString("TASKHUB_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("TASKHUB_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("TASKHUB_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("TASKHUB_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("TASKHUB_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("TASKHUB_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL: EnvString("TASKHUB_DATABASE_URL", ""),
		DBMaxConns:  EnvInt32("TASKHUB_DB_MAX_CONNS", 10),
		DBMinConns:  EnvInt32("TASKHUB_DB_MIN_CONNS", 0),

		ReadinessRequireDB: EnvBool("TASKHUB_READINESS_REQUIRE_DB", false),

		SweepInterval: EnvDuration("TASKHUB_AUTH_SWEEP_INTERVAL", time.Hour),

		LoginMaxAttempts: EnvInt("TASKHUB_LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:      EnvDuration("TASKHUB_LOGIN_WINDOW", 15*time.Minute),
	}
}
