// Command iband serves IBAN validation over gRPC and HTTP.
//
// Usage:
//
//	iband                   run the servers
//	iband seed-countries    write the built-in country rules to the database
//	iband migrate-down      roll back all migrations
//	iband gen-dev-cert DIR  write a self-signed certificate for local TLS
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/credentials"

	"github.com/bibbank/iban/pkg/auth"
	"github.com/bibbank/iban/pkg/iban"
	pkgkafka "github.com/bibbank/iban/pkg/kafka"
	"github.com/bibbank/iban/pkg/observability"
	pgpkg "github.com/bibbank/iban/pkg/postgres"
	"github.com/bibbank/iban/pkg/tlsutil"
	"github.com/bibbank/iban/services/iban-service/internal/application/usecase"
	"github.com/bibbank/iban/services/iban-service/internal/domain/port"
	"github.com/bibbank/iban/services/iban-service/internal/domain/service"
	"github.com/bibbank/iban/services/iban-service/internal/infrastructure/config"
	infraKafka "github.com/bibbank/iban/services/iban-service/internal/infrastructure/kafka"
	infraPostgres "github.com/bibbank/iban/services/iban-service/internal/infrastructure/postgres"
	"github.com/bibbank/iban/services/iban-service/internal/infrastructure/telemetry"
	grpcPresentation "github.com/bibbank/iban/services/iban-service/internal/presentation/grpc"
	"github.com/bibbank/iban/services/iban-service/internal/presentation/rest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("iband failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "gen-dev-cert" {
		return genDevCert(args[1:])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Telemetry.ServiceName,
	})

	if len(args) == 0 {
		return serve(ctx, cfg, logger)
	}
	switch args[0] {
	case "seed-countries":
		return seedCountries(ctx, cfg, logger)
	case "migrate-down":
		return migrateDown(cfg, logger)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("starting iban service", "method", cfg.ValidationMethod.String())

	tracerProvider, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    cfg.Telemetry.Insecure,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer shutdownWithTimeout(logger, "tracer provider", tracerProvider.Shutdown)

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName:       cfg.Telemetry.ServiceName,
		RuntimeCollectors: true,
		SetGlobal:         true,
	})
	if err != nil {
		return err
	}
	defer shutdownWithTimeout(logger, "meter provider", meterProvider.Shutdown)

	// Database is optional: without it the service validates against the
	// built-in registry and keeps no audit trail.
	var pool *pgxpool.Pool
	if cfg.DB.Enabled {
		pool, err = openDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var rules port.CountryRuleSource
	if pool != nil && cfg.DB.CountryRules {
		rules = infraPostgres.NewCountryRuleRepo(pool)
	}
	registry, err := service.NewRegistryBuilder(iban.DefaultRegistry(), rules, logger).Build(ctx)
	if err != nil {
		return err
	}

	validator, err := iban.NewValidator(&iban.Options{Registry: registry, Method: cfg.ValidationMethod})
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	metrics, err := telemetry.NewMetrics(meterProvider, registry)
	if err != nil {
		return err
	}
	validateOpts := []usecase.ValidateIBANOption{usecase.WithMetrics(metrics)}

	var audit port.ValidationRepository
	if pool != nil && cfg.DB.AuditEnabled {
		audit = infraPostgres.NewValidationRepo(pool)
		validateOpts = append(validateOpts, usecase.WithAudit(audit))
	}

	if cfg.Kafka.Enabled {
		producer, err := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			SASLMechanism: cfg.Kafka.SASLMechanism,
			SASLUsername:  cfg.Kafka.SASLUsername,
			SASLPassword:  cfg.Kafka.SASLPassword,
			TLS:           cfg.Kafka.TLS,
			WriteTimeout:  5 * time.Second,
			Async:         cfg.Kafka.Async,
		})
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		publisher := infraKafka.NewPublisher(producer, logger, infraKafka.WithPublishTimeout(cfg.Kafka.PublishTimeout))
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("failed to close kafka publisher", "error", err)
			}
		}()
		validateOpts = append(validateOpts, usecase.WithPublisher(publisher, cfg.Kafka.Topic))
	}

	validateUC := usecase.NewValidateIBAN(validator, logger, validateOpts...)
	getCountryUC := usecase.NewGetCountry(validator)
	listCountriesUC := usecase.NewListCountries(validator)
	buildUC := usecase.NewBuildIBAN(validator)
	getValidationUC := usecase.NewGetValidation(audit)

	var tokenValidator auth.TokenValidator
	if cfg.Auth.Disabled {
		logger.Warn("authentication disabled")
	} else {
		jwtCfg, err := jwtConfig(cfg.Auth)
		if err != nil {
			return err
		}
		jwtSvc, err := auth.NewJWTService(jwtCfg)
		if err != nil {
			return fmt.Errorf("initialize JWT service: %w", err)
		}
		tokenValidator = jwtSvc
	}

	var creds credentials.TransportCredentials
	if cfg.GRPC.TLSCertFile != "" {
		creds, err = tlsutil.ServerTLSConfig(cfg.GRPC.TLSCertFile, cfg.GRPC.TLSKeyFile, cfg.GRPC.TLSClientCAFile)
		if err != nil {
			return err
		}
	}

	grpcHandler := grpcPresentation.NewIbanHandler(
		validateUC, getCountryUC, listCountriesUC, buildUC, getValidationUC,
		tokenValidator != nil,
	)
	grpcServer := grpcPresentation.NewServer(grpcHandler, grpcPresentation.ServerConfig{
		Port:       cfg.GRPCPort,
		Validator:  tokenValidator,
		Creds:      creds,
		Reflection: cfg.GRPC.Reflection,
	}, logger)

	checks := map[string]rest.CheckFunc{}
	if pool != nil {
		checks["database"] = func(ctx context.Context) error { return pgpkg.HealthCheck(ctx, pool) }
	}
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	restHandler := rest.NewIbanHandler(
		validateUC, getCountryUC, listCountriesUC, buildUC, getValidationUC,
		tokenValidator != nil, logger,
	)
	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: rest.NewRouter(rest.RouterConfig{
			Health:    rest.NewHealthHandler(cfg.Telemetry.ServiceName, checks, logger),
			API:       restHandler,
			Metrics:   metricsHandler,
			Validator: tokenValidator,
			RateLimit: limiter,
			Logger:    logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	grpcServer.Stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown HTTP server", "error", err)
	}

	logger.Info("iban service stopped")
	return serveErr
}

func openDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	dbCfg := databaseConfig(cfg)
	pool, err := pgpkg.NewPool(connectCtx, dbCfg)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", "database", dbCfg.Database)

	if cfg.DB.Migrate {
		if err := pgpkg.RunMigrations(dbCfg.DSN(), infraPostgres.Migrations, infraPostgres.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

func databaseConfig(cfg config.Config) pgpkg.Config {
	return pgpkg.Config{
		Host:            cfg.DB.Host,
		Port:            cfg.DB.Port,
		User:            cfg.DB.User,
		Password:        cfg.DB.Password,
		Database:        cfg.DB.Name,
		SSLMode:         cfg.DB.SSLMode,
		ApplicationName: cfg.Telemetry.ServiceName,
		MaxConns:        cfg.DB.MaxConns,
		MinConns:        cfg.DB.MinConns,
		ConnectTimeout:  5 * time.Second,
	}
}

// jwtConfig resolves the validation key: public key, then key file, then secret.
func jwtConfig(cfg config.AuthConfig) (auth.JWTConfig, error) {
	jwtCfg := auth.JWTConfig{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   30 * time.Second,
	}
	switch {
	case cfg.PublicKey != "":
		jwtCfg.PublicKeyPEM = cfg.PublicKey
	case cfg.PublicKeyFile != "":
		keyData, err := auth.LoadKeyFromFile(cfg.PublicKeyFile)
		if err != nil {
			return auth.JWTConfig{}, err
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.Secret
	}
	return jwtCfg, nil
}

func shutdownWithTimeout(logger *slog.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		logger.Warn("shutdown failed", "component", name, "error", err)
	}
}
