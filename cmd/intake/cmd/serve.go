package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/streetcommerce/intake/internal/api/handlers"
	"github.com/streetcommerce/intake/internal/api/middleware"
	"github.com/streetcommerce/intake/internal/config"
	"github.com/streetcommerce/intake/internal/notify"
	"github.com/streetcommerce/intake/internal/shopify"
	"github.com/streetcommerce/intake/internal/store"
	"github.com/streetcommerce/intake/internal/vendors"
	"github.com/streetcommerce/intake/pkg/extract"
	"github.com/streetcommerce/intake/pkg/intake"
	"github.com/streetcommerce/intake/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the intake API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	backend, err := llmBackend(cfg)
	if err != nil {
		return err
	}
	log.Info("extraction backend ready", "backend", backend.Name())

	extractor := extract.NewLLMExtractor(backend, extract.WithMaxTokens(cfg.LLM.MaxTokens))

	directory := vendors.NewCachedDirectory(
		vendors.NewHTTPDirectory(cfg.Vendors.URL, cfg.Vendors.Key),
		cfg.Vendors.CacheTTL,
	)

	scheduler, err := vendors.NewScheduler(directory, cfg.Vendors.RefreshInterval, log)
	if err != nil {
		return fmt.Errorf("creating vendor scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	normalizer := intake.NewNormalizer(extractor,
		intake.WithDirectory(directory),
		intake.WithConfig(intake.Config{
			DefaultPayoutPct: cfg.Intake.DefaultPayoutPct,
			DefaultVendor:    cfg.Intake.DefaultVendor,
		}),
		intake.WithLogger(log),
	)

	catalog := shopify.NewAdminClient(
		shopify.NewStoreTokenProvider(st),
		shopify.WithAPIVersion(cfg.Shopify.APIVersion),
		shopify.WithRateLimiter(shopify.NewRateLimiter(
			cfg.Shopify.RateLimit.PerSecond,
			cfg.Shopify.RateLimit.Burst,
		)),
	)

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Intake API", Version))
	handlers.RegisterParseRoutes(api, handlers.NewParseHandler(normalizer))
	handlers.RegisterComposeRoutes(api, handlers.NewComposeHandler())
	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(st))
	handlers.RegisterPublishRoutes(api, handlers.NewPublishHandler(
		st, catalog, notifier, cfg.Shopify.ShopDomain, log))
	handlers.RegisterVendorRoutes(api, handlers.NewVendorsHandler(directory))
	handlers.RegisterLocationRoutes(api, handlers.NewLocationsHandler(catalog, cfg.Shopify.ShopDomain))
	handlers.RegisterSettingsRoutes(api, handlers.NewSettingsHandler(st, cfg.Shopify.ShopDomain))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func llmBackend(cfg *config.Config) (extract.LLMBackend, error) {
	timeout := &http.Client{Timeout: cfg.LLM.Timeout}

	switch cfg.LLM.Backend {
	case "openai":
		return extract.NewOpenAIBackend(
			extract.WithOpenAIEndpoint(cfg.LLM.OpenAI.Endpoint),
			extract.WithOpenAIModel(cfg.LLM.OpenAI.Model),
			extract.WithOpenAIHTTPClient(timeout),
		), nil
	case "anthropic":
		return extract.NewAnthropicBackend(
			extract.WithAnthropicModel(cfg.LLM.Anthropic.Model),
			extract.WithAnthropicHTTPClient(timeout),
		), nil
	case "ollama":
		return extract.NewOllamaBackend(
			cfg.LLM.Ollama.Endpoint,
			cfg.LLM.Ollama.Model,
			extract.WithOllamaHTTPClient(timeout),
		), nil
	default:
		return nil, fmt.Errorf("unknown LLM backend: %q", cfg.LLM.Backend)
	}
}
