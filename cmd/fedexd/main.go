// Command fedexd serves the FedEx carrier API.
//
//	fedexd                                   run the HTTP server
//	fedexd token -role client -client-id c1  print a signed API token
//
// @title                       FedEx Carrier API
// @version                     1.0
// @description                 Rates, labels, cancellations and tracking through FedEx Web Services.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/api"
	"github.com/99minutos/fedex-carrier/internal/api/middleware"
	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
	"github.com/99minutos/fedex-carrier/internal/core/service"
	"github.com/99minutos/fedex-carrier/internal/fedex"
	mongodb "github.com/99minutos/fedex-carrier/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/fedex-carrier/internal/infrastructure/db/redis"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/http/handlers"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/queue"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/transport"
	"github.com/99minutos/fedex-carrier/internal/pkg/config"
	"github.com/99minutos/fedex-carrier/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(cfg, os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
		File:   cfg.LogFile,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("fedexd stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	shipments := mongodb.NewShipmentRepository(db)
	events := mongodb.NewEventRepository(db)
	payloads := mongodb.NewPayloadRepository(db)
	if err := mongodb.EnsureIndexes(ctx, shipments, events, payloads); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Carrier ---
	creds := fedex.Credentials{
		Key:           cfg.FedEx.Key,
		Password:      cfg.FedEx.Password,
		AccountNumber: cfg.FedEx.Account,
		MeterNumber:   cfg.FedEx.Meter,
	}
	credsErr := creds.Validate()
	if credsErr != nil {
		log.Warn().Err(credsErr).Msg("fedex credentials incomplete, carrier calls will be rejected")
	}

	httpsClient := transport.NewHTTPSClient(transport.Config{Timeout: cfg.FedEx.Timeout}, log.With().Str("component", "transport").Logger())
	carrier := fedex.New(fedex.Config{
		Credentials: creds,
		Defaults:    carrierDefaults(cfg.FedEx),
		TestURL:     cfg.FedEx.TestURL,
		LiveURL:     cfg.FedEx.LiveURL,
	}, httpsClient, fedex.WithLogger(log.With().Str("carrier", fedex.Name).Logger()))

	// --- Services ---
	shipping := service.NewShippingService([]ports.Carrier{carrier}, shipments, payloads, log)
	tracking := service.NewTrackingService(shipping, shipments, events, redisdb.NewDedupChecker(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.TrackingWorkers, tracking, log)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Shipping:     shipping,
		RefreshQueue: dispatcher,
		HealthChecks: map[string]handlers.Check{
			"mongodb":           handlers.MongoCheck(db),
			"redis":             handlers.RedisCheck(rdb),
			"fedex_credentials": handlers.StaticCheck(credsErr),
		},
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("fedexd listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		stopWorkers()
		dispatcher.Wait()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("fedexd stopped")
	return nil
}

// carrierDefaults turns the notification settings into the options merged
// under every call.
func carrierDefaults(cfg config.FedExConfig) domain.Options {
	defaults := domain.Options{
		Test:                        cfg.TestMode(),
		NotificationAggregationType: cfg.NotificationAggregate,
	}
	if len(cfg.NotifyEmails) == 0 {
		return defaults
	}

	tmpl := domain.NotificationRecipient{Format: cfg.NotifyFormat, Language: cfg.NotifyLanguage}
	for _, ev := range cfg.NotifyEvents {
		switch strings.ToLower(strings.TrimSpace(ev)) {
		case "delivery":
			tmpl.OnDelivery = true
		case "exception":
			tmpl.OnException = true
		case "shipment":
			tmpl.OnShipment = true
		case "tender":
			tmpl.OnTender = true
		}
	}
	for _, addr := range cfg.NotifyEmails {
		r := tmpl
		r.Address = strings.TrimSpace(addr)
		defaults.Notifications = append(defaults.Notifications, r)
	}
	return defaults
}

func issueToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	role := fs.String("role", domain.RoleClient, "admin or client")
	clientID := fs.String("client-id", "", "client id, required for the client role")
	subject := fs.String("subject", "", "token subject, e.g. an operator e-mail")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := middleware.IssueToken(cfg.JWTSecret, *subject, *role, *clientID, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
