package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/bibbank/iban/pkg/iban"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort  int    `env:"HTTP_PORT" envDefault:"8090"`
	GRPCPort  int    `env:"GRPC_PORT" envDefault:"9090"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// RateLimitRPS caps /v1 requests per second across all clients. Zero disables it.
	RateLimitRPS   float64 `env:"HTTP_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"HTTP_RATE_LIMIT_BURST" envDefault:"50"`

	// ValidationMethod is "strict" or "loose".
	ValidationMethod iban.ValidationMethod `env:"IBAN_VALIDATION_METHOD" envDefault:"strict"`

	DB        DBConfig        `envPrefix:"DB_"`
	Kafka     KafkaConfig     `envPrefix:"KAFKA_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
	Auth      AuthConfig
	GRPC      GRPCConfig `envPrefix:"GRPC_"`
}

// DBConfig holds database connection parameters. With Enabled false the
// service runs on the built-in registry and keeps no audit trail.
type DBConfig struct {
	Enabled      bool   `env:"ENABLED" envDefault:"true"`
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"bib"`
	Password     string `env:"PASSWORD"`
	Name         string `env:"NAME" envDefault:"bib_iban"`
	SSLMode      string `env:"SSLMODE" envDefault:"require"`
	MaxConns     int32  `env:"MAX_CONNS" envDefault:"20"`
	MinConns     int32  `env:"MIN_CONNS" envDefault:"2"`
	Migrate      bool   `env:"MIGRATE" envDefault:"true"`
	AuditEnabled bool   `env:"AUDIT_ENABLED" envDefault:"true"`
	CountryRules bool   `env:"COUNTRY_RULES" envDefault:"true"`
}

// KafkaConfig holds Kafka broker configuration.
type KafkaConfig struct {
	Enabled       bool     `env:"ENABLED" envDefault:"true"`
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"iban.validations"`
	ClientID      string   `env:"CLIENT_ID" envDefault:"iban-service"`
	SASLMechanism string   `env:"SASL_MECHANISM"`
	SASLUsername  string   `env:"SASL_USERNAME"`
	SASLPassword  string   `env:"SASL_PASSWORD"`
	TLS           bool     `env:"TLS"`

	// Async returns from a publish without waiting for broker acknowledgement.
	Async bool `env:"ASYNC"`
	// PublishTimeout bounds each publish made while serving a request.
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"2s"`
}

// TelemetryConfig holds OpenTelemetry configuration.
type TelemetryConfig struct {
	OTLPEndpoint string  `env:"EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool    `env:"EXPORTER_OTLP_INSECURE" envDefault:"true"`
	SampleRatio  float64 `env:"TRACES_SAMPLER_ARG" envDefault:"1"`
	ServiceName  string  `env:"SERVICE_NAME" envDefault:"iban-service"`
}

// AuthConfig holds JWT validation settings. The public key is preferred over
// the shared secret when both are present.
type AuthConfig struct {
	Disabled      bool   `env:"AUTH_DISABLED"`
	Secret        string `env:"JWT_SECRET"`
	PublicKey     string `env:"JWT_PUBLIC_KEY"`
	PublicKeyFile string `env:"JWT_PUBLIC_KEY_FILE"`
	Issuer        string `env:"JWT_ISSUER" envDefault:"bib-gateway"`
	Audience      string `env:"JWT_AUDIENCE"`
}

// GRPCConfig holds gRPC transport settings.
type GRPCConfig struct {
	TLSCertFile     string `env:"TLS_CERT_FILE"`
	TLSKeyFile      string `env:"TLS_KEY_FILE"`
	TLSClientCAFile string `env:"TLS_CLIENT_CA_FILE"`
	Reflection      bool   `env:"REFLECTION"`
}

const minSecretLength = 32

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error

	for name, port := range map[string]int{"HTTP_PORT": c.HTTPPort, "GRPC_PORT": c.GRPCPort} {
		if port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%s %d out of range", name, port))
		}
	}
	if c.HTTPPort == c.GRPCPort {
		errs = append(errs, errors.New("HTTP_PORT and GRPC_PORT must differ"))
	}

	if c.DB.Enabled && c.DB.Password == "" {
		errs = append(errs, errors.New("DB_PASSWORD is required when DB_ENABLED=true"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true"))
	}
	if c.Kafka.PublishTimeout < 0 {
		errs = append(errs, errors.New("KAFKA_PUBLISH_TIMEOUT must not be negative"))
	}
	if c.RateLimitRPS < 0 || (c.RateLimitRPS > 0 && c.RateLimitBurst < 1) {
		errs = append(errs, errors.New("HTTP_RATE_LIMIT_RPS must be >= 0 with HTTP_RATE_LIMIT_BURST >= 1"))
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_TRACES_SAMPLER_ARG %v outside [0,1]", c.Telemetry.SampleRatio))
	}

	if !c.Auth.Disabled {
		switch {
		case c.Auth.PublicKey != "" || c.Auth.PublicKeyFile != "":
		case c.Auth.Secret == "":
			errs = append(errs, errors.New("one of JWT_PUBLIC_KEY, JWT_PUBLIC_KEY_FILE or JWT_SECRET is required unless AUTH_DISABLED=true"))
		case len(c.Auth.Secret) < minSecretLength:
			errs = append(errs, fmt.Errorf("JWT_SECRET is too short (%d chars); minimum %d", len(c.Auth.Secret), minSecretLength))
		}
	}

	if (c.GRPC.TLSCertFile == "") != (c.GRPC.TLSKeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	if c.GRPC.TLSClientCAFile != "" && c.GRPC.TLSCertFile == "" {
		errs = append(errs, errors.New("GRPC_TLS_CLIENT_CA_FILE requires GRPC_TLS_CERT_FILE"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
