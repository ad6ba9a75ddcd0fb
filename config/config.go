package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// Server
	ServerPort  string `env:"SERVER_PORT" envDefault:"8888"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"findrhealth"`

	// PostgreSQL
	PostgreSQLHost     string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort     string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser     string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase string `env:"POSTGRESQL_DATABASE" envDefault:"findrhealth"`
	PostgreSQLSchema   string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode  string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle  int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"30"`
	PostgreSQLMaxOpen  int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"200"`
	// Optional read replica, attached through dbresolver when set
	PostgreSQLReplicaHost string `env:"POSTGRESQL_REPLICA_HOST"`
	PostgreSQLReplicaPort string `env:"POSTGRESQL_REPLICA_PORT" envDefault:"5432"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"findr"`

	// RabbitMQ
	RabbitMQAddr     string `env:"RABBITMQ_ADDR" envDefault:"localhost"`
	RabbitMQPort     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME" envDefault:"guest"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	RabbitMQVhost    string `env:"RABBITMQ_VHOST" envDefault:"/"`

	// JWT: onboarding session tokens issued after ownership verification
	JWTSecret        string `env:"JWT_SECRET"`
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"120"`
	JWTRefreshDays   int    `env:"JWT_REFRESH_DAYS" envDefault:"7"`

	// Session / CSRF protection for browser-facing POSTs. Disabled by
	// default so header-token API clients are not forced through the
	// cookie flow.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"findr-session"`
	CSRFSecret    string `env:"CSRF_SECRET" envDefault:"findr-csrf"`
	CSRFEnabled   bool   `env:"CSRF_ENABLED" envDefault:"false"`

	// Google Places proxy
	PlacesProvider   string `env:"PLACES_PROVIDER" envDefault:"google"` // google, mock
	GooglePlacesKey  string `env:"GOOGLE_PLACES_API_KEY"`
	PlacesMaxResults int    `env:"PLACES_MAX_RESULTS" envDefault:"3"`
	PlacesCacheTTL   int    `env:"PLACES_CACHE_TTL_SECONDS" envDefault:"900"`

	// Verification email
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"mock"` // smtp, mock
	SMTPHost      string `env:"SMTP_HOST"`
	SMTPPort      string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername  string `env:"SMTP_USERNAME"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"verify@findrhealth.com"`

	// Ownership verification policy
	VerificationExpireSeconds int `env:"VERIFICATION_EXPIRE_SECONDS" envDefault:"600"`
	VerificationMaxAttempts   int `env:"VERIFICATION_MAX_ATTEMPTS" envDefault:"3"`
	VerificationMaxDaily      int `env:"VERIFICATION_MAX_DAILY" envDefault:"10"`
	VerificationLockSeconds   int `env:"VERIFICATION_LOCK_SECONDS" envDefault:"900"`

	// Salt for hashing emails into Redis keys
	EmailHashSalt string `env:"EMAILHASH_SALT" envDefault:"findr"`

	// Draft snapshot persistence
	DraftSnapshotTTLHours int `env:"DRAFT_SNAPSHOT_TTL_HOURS" envDefault:"72"`
	DraftSnapshotMaxBytes int `env:"DRAFT_SNAPSHOT_MAX_BYTES" envDefault:"1048576"`

	// Wizard limits
	PhotoMaxCount int   `env:"PHOTO_MAX_COUNT" envDefault:"5"`
	PhotoMaxBytes int64 `env:"PHOTO_MAX_BYTES" envDefault:"5242880"`
	MinSelections int   `env:"MIN_SERVICE_SELECTIONS" envDefault:"2"`

	// Snowflake ID generator
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// Logging
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// Tracing / metrics
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`

	// Rate limiting, consumed by middleware
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.JWTSecret == "" {
		if Cfg.IsProduction() {
			log.Fatal("JWT_SECRET is required in production")
		}
		log.Printf("WARN: JWT_SECRET is not set, using an insecure development default")
		Cfg.JWTSecret = "findr-dev-secret"
	}

	if Cfg.PlacesProvider == "google" && Cfg.GooglePlacesKey == "" {
		log.Printf("WARN: GOOGLE_PLACES_API_KEY is not set, business lookup will not work")
	}

	if Cfg.EmailProvider == "smtp" && Cfg.SMTPHost == "" {
		log.Printf("WARN: SMTP_HOST is not set, verification emails will not be delivered")
	}

	if Cfg.VerificationMaxAttempts < 1 {
		log.Fatal("VERIFICATION_MAX_ATTEMPTS must be at least 1")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetReplicaDSN() string {
	if c.PostgreSQLReplicaHost == "" {
		return ""
	}
	return "host=" + c.PostgreSQLReplicaHost +
		" port=" + c.PostgreSQLReplicaPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetRabbitMQURL() string {
	return "amqp://" + c.RabbitMQUsername + ":" + c.RabbitMQPassword + "@" + c.RabbitMQAddr + ":" + c.RabbitMQPort + c.RabbitMQVhost
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
