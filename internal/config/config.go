package config

import (
	"strings"
	"time"

	"hotel/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Log     LogConfig
	Cache   CacheConfig
	AMQP    AMQPConfig
	Invoice InvoiceConfig
	NoShow  NoShowConfig
}

type AppConfig struct {
	Env  string `envconfig:"APP_ENV" default:"dev"`
	Name string `envconfig:"APP_NAME" default:"hotel-api"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	URL             string        `envconfig:"DATABASE_URL" default:"hotel.db"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	LogQueries      bool          `envconfig:"DB_LOG_QUERIES" default:"false"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type CacheConfig struct {
	// MemcachedAddr enables the shared second tier when set, e.g. "localhost:11211".
	MemcachedAddr string        `envconfig:"MEMCACHED_ADDR"`
	LocalMaxSize  int64         `envconfig:"CACHE_LOCAL_MAX_SIZE" default:"1000"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"hotel.events"`
}

type InvoiceConfig struct {
	TaxRate      float64 `envconfig:"INVOICE_TAX_RATE" default:"0.19"`
	HotelName    string  `envconfig:"INVOICE_HOTEL_NAME" default:"Hotel"`
	HotelTaxID   string  `envconfig:"INVOICE_HOTEL_TAX_ID"`
	NumberPrefix string  `envconfig:"INVOICE_NUMBER_PREFIX" default:"FAC"`
}

type NoShowConfig struct {
	GraceDays int `envconfig:"NOSHOW_GRACE_DAYS" default:"1"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errs.Wrap(err, "process env config")
	}
	cfg.App.Env = strings.ToLower(strings.TrimSpace(cfg.App.Env))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.TTL <= 0 {
		return errs.New("JWT_TTL must be > 0")
	}
	if strings.TrimSpace(c.DB.URL) == "" {
		return errs.New("DATABASE_URL must not be empty")
	}
	if c.Invoice.TaxRate < 0 || c.Invoice.TaxRate >= 1 {
		return errs.New("INVOICE_TAX_RATE must be in [0, 1)")
	}
	if c.NoShow.GraceDays < 0 {
		return errs.New("NOSHOW_GRACE_DAYS must be >= 0")
	}
	if c.IsProdLike() {
		secret := strings.TrimSpace(c.JWT.Secret)
		if secret == "" || secret == defaultJWTSecret {
			return errs.New("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	switch c.App.Env {
	case "prod", "production", "release":
		return true
	}
	return false
}

// NewTestConfig returns a config usable without any environment.
func NewTestConfig() *Config {
	return &Config{
		App:    AppConfig{Env: "test", Name: "hotel-api"},
		Server: ServerConfig{Port: "8889", ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, ShutdownTimeout: time.Second},
		DB:     DBConfig{URL: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, AutoMigrate: true},
		JWT:    JWTConfig{Secret: "test-secret", TTL: time.Hour},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log:     LogConfig{Level: "debug"},
		Cache:   CacheConfig{LocalMaxSize: 100, TTL: time.Minute},
		AMQP:    AMQPConfig{Exchange: "hotel.events"},
		Invoice: InvoiceConfig{TaxRate: 0.19, HotelName: "Hotel Test", NumberPrefix: "FAC"},
		NoShow:  NoShowConfig{GraceDays: 1},
	}
}
