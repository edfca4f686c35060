package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	AWS            AWSConfig            `mapstructure:"aws"`
	DynamoDB       DynamoDBConfig       `mapstructure:"dynamodb"`
	Auth           AuthConfig           `mapstructure:"auth"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	PropertyLookup PropertyLookupConfig `mapstructure:"property_lookup"`
	Google         GoogleConfig         `mapstructure:"google"`
	Booking        BookingConfig        `mapstructure:"booking"`
	Resend         ResendConfig         `mapstructure:"resend"`
	Reviews        ReviewsConfig        `mapstructure:"reviews"`
	MercadoPago    MercadoPagoConfig    `mapstructure:"mercadopago"`
	PaymentGateway PaymentGatewayConfig `mapstructure:"payment_gateway"`
}

// ServerConfig.TrustedProxies lists the proxy addresses or CIDRs whose X-Forwarded-For is
// believed. Empty means the client IP is always the connection's remote address.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	Mode           string   `mapstructure:"mode"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// DatabaseConfig: DSN is the privileged (service role) connection; FallbackDSN is the
// direct-query connection used by admin views when the privileged read fails.
type DatabaseConfig struct {
	DSN          string `mapstructure:"dsn"`
	FallbackDSN  string `mapstructure:"fallback_dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	IdempotencyTable string `mapstructure:"idempotency_table"`
	PaymentsTable    string `mapstructure:"payments_table"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	AdminRole string `mapstructure:"admin_role"`
}

type RateLimitConfig struct {
	Window      time.Duration `mapstructure:"window"`
	MaxRequests int           `mapstructure:"max_requests"`
}

type PropertyLookupConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Debounce time.Duration `mapstructure:"debounce"`
}

type GoogleConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	CalendarID   string `mapstructure:"calendar_id"`
	PlacesAPIKey string `mapstructure:"places_api_key"`
	PlacesQuery  string `mapstructure:"places_query"`
}

type BookingConfig struct {
	Timezone       string        `mapstructure:"timezone"`
	EventDuration  time.Duration `mapstructure:"event_duration"`
	IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
	BusinessName   string        `mapstructure:"business_name"`
}

type ResendConfig struct {
	APIKey     string `mapstructure:"api_key"`
	From       string `mapstructure:"from"`
	StaffEmail string `mapstructure:"staff_email"`
}

type ReviewsConfig struct {
	CacheTTL time.Duration     `mapstructure:"cache_ttl"`
	Fallback []entities.Review `mapstructure:"fallback"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type PaymentGatewayConfig struct {
	Mock bool `mapstructure:"mock"`
}

var defaults = map[string]any{
	"server.addr":                    ":8080",
	"server.mode":                    "release",
	"server.trusted_proxies":         []string{},
	"database.dsn":                   "",
	"database.fallback_dsn":          "",
	"database.max_open_conns":        10,
	"aws.region":                     "us-east-1",
	"aws.access_key_id":              "local",
	"aws.secret_access_key":          "local",
	"dynamodb.endpoint":              "",
	"dynamodb.idempotency_table":     "booking_idempotency",
	"dynamodb.payments_table":        "payments",
	"auth.jwt_secret":                "",
	"auth.admin_role":                "admin",
	"rate_limit.window":              "1h",
	"rate_limit.max_requests":        20,
	"property_lookup.base_url":       "",
	"property_lookup.api_key":        "",
	"property_lookup.timeout":        "10s",
	"property_lookup.debounce":       "300ms",
	"google.client_id":               "",
	"google.client_secret":           "",
	"google.refresh_token":           "",
	"google.calendar_id":             "primary",
	"google.places_api_key":          "",
	"google.places_query":            "",
	"booking.timezone":               "America/New_York",
	"booking.event_duration":         "30m",
	"booking.idempotency_ttl":        "24h",
	"booking.business_name":          "Appraisal & Photography",
	"resend.api_key":                 "",
	"resend.from":                    "",
	"resend.staff_email":             "",
	"reviews.cache_ttl":              "1h",
	"mercadopago.access_token":       "",
	"mercadopago.test_payer_email":   "",
	"mercadopago.test_payer_user_id": "",
	"payment_gateway.mock":           false,
}

// LoadConfig loads configuration from config.yaml (optional) and environment variables.
//
// Every key can be overridden from the environment by upper-casing it and replacing
// dots with underscores (database.dsn -> DATABASE_DSN).
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./deploy/", "./", "/etc/appraisal/"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Location resolves the booking timezone, falling back to UTC when unknown.
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
