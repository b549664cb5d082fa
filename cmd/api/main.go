package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/buildsetu/buildsetu-backend/api/routes"
	"github.com/buildsetu/buildsetu-backend/internal/auth"
	"github.com/buildsetu/buildsetu-backend/internal/automation"
	"github.com/buildsetu/buildsetu-backend/internal/cart"
	"github.com/buildsetu/buildsetu-backend/internal/catalog"
	"github.com/buildsetu/buildsetu-backend/internal/clients"
	"github.com/buildsetu/buildsetu-backend/internal/contact"
	"github.com/buildsetu/buildsetu-backend/internal/quotations"
	"github.com/buildsetu/buildsetu-backend/internal/requests"
	"github.com/buildsetu/buildsetu-backend/internal/users"
	"github.com/buildsetu/buildsetu-backend/pkg/config"
	"github.com/buildsetu/buildsetu-backend/pkg/db"
	"github.com/buildsetu/buildsetu-backend/pkg/logger"
	"github.com/buildsetu/buildsetu-backend/pkg/migrate"
	"github.com/buildsetu/buildsetu-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())
	clientRepo := clients.NewRepository(dbClient.DB())
	catalogService := catalog.NewService()

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		TxRunner:       dbClient,
		AppConfig:      cfg.App,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(redisClient, catalogService, cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	requestsService, err := requests.NewService(requests.ServiceParams{
		Repo:       requests.NewRepository(dbClient.DB()),
		ClientRepo: clientRepo,
		Cart:       cartService,
		Tx:         dbClient,
		Logger:     logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create requests service", err)
		os.Exit(1)
	}

	quotationsService, err := quotations.NewService(quotations.ServiceParams{
		Repo:       quotations.NewRepository(dbClient.DB()),
		ClientRepo: clientRepo,
		Tx:         dbClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create quotations service", err)
		os.Exit(1)
	}

	appender, err := contact.NewSheetsAppender(context.Background(), cfg.Sheets)
	if err != nil {
		logg.Warn(context.Background(), "contact sheet not configured, submissions will fail")
		appender = contact.NewDisabledAppender()
	}
	contactService, err := contact.NewService(appender)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	var forwarder *automation.Forwarder
	if cfg.Automation.ScriptURL != "" {
		forwarder, err = automation.NewForwarder(cfg.Automation)
		if err != nil {
			logg.Error(context.Background(), "failed to create automation forwarder", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "automation script url not configured, proxy endpoints disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			authService,
			userRepo,
			clientRepo,
			catalogService,
			cartService,
			requestsService,
			quotationsService,
			contactService,
			forwarder,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
