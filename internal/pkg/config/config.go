package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - payment processor secrets are optional here and checked at the point of use
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Stripe  StripeConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Storage StorageConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" required:"true"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the signing secret of the hosted auth provider's session tokens.
type JWTConfig struct {
	Secret       string   `envconfig:"AUTH_JWT_SECRET" required:"true"`
	Issuer       string   `envconfig:"AUTH_JWT_ISSUER"`
	CookieName   string   `envconfig:"AUTH_COOKIE_NAME" default:"sb-access-token"`
	ServiceRoles []string `envconfig:"AUTH_SERVICE_ROLES" default:"service_role"`
}

type StripeConfig struct {
	SecretKey       string        `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret   string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	PortalReturnURL string        `envconfig:"STRIPE_PORTAL_RETURN_URL" default:"http://localhost:3000/dashboard"`
	PlanType        string        `envconfig:"STRIPE_PLAN_TYPE" default:"pro"`
	DeliveryLockTTL time.Duration `envconfig:"STRIPE_DELIVERY_LOCK_TTL" default:"2m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	BillingTopic string   `envconfig:"KAFKA_BILLING_TOPIC" default:"retrack.billing"`
}

type StorageConfig struct {
	Endpoint      string `envconfig:"S3_ENDPOINT"`
	Region        string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket        string `envconfig:"S3_BUCKET" default:"product-images"`
	AccessKey     string `envconfig:"S3_ACCESS_KEY"`
	SecretKey     string `envconfig:"S3_SECRET_KEY"`
	PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
	MaxUploadMB   int64  `envconfig:"S3_MAX_UPLOAD_MB" default:"10"`
}

type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"retrack"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1.0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

func (c StorageConfig) Enabled() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8889", // Test port
			PublicURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:       "test-auth-secret-at-least-32-bytes-long",
			CookieName:   "sb-access-token",
			ServiceRoles: []string{"service_role"},
		},
		Stripe: StripeConfig{
			WebhookSecret:   "whsec_test",
			PortalReturnURL: "http://localhost:3000/dashboard",
			PlanType:        "pro",
			DeliveryLockTTL: 2 * time.Minute,
		},
		Kafka: KafkaConfig{
			BillingTopic: "retrack.billing",
		},
		Storage: StorageConfig{
			Region:      "us-east-1",
			Bucket:      "product-images",
			MaxUploadMB: 10,
		},
		Tracing: TracingConfig{
			ServiceName: "retrack",
			SampleRatio: 1.0,
		},
	}
}
