package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Microservice converting amounts between currencies with provider fallback
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		exchangeRateURL, currencyLayerURL, currencyLayerKey,
		apiTimeoutSec, selectorSeed,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		exchangeRateURL, currencyLayerURL, currencyLayerKey,
		apiTimeoutSec, selectorSeed,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, rate provider, selector and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	exchangeRateURL, currencyLayerURL, currencyLayerKey string,
	apiTimeoutSec int, selectorSeed uint64,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate providers config
	exchangeRateURL = getEnv("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest")
	currencyLayerURL = getEnv("CURRENCY_LAYER_API_URL", "http://api.currencylayer.com/live")
	currencyLayerKey = getEnv("CURRENCY_LAYER_ACCESS_KEY", "")
	if apiTimeoutSec, err = strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "5")); err != nil {
		return
	}

	// Provider selector config
	if selectorSeed, err = strconv.ParseUint(getEnv("SELECTOR_SEED", "0"), 10, 64); err != nil {
		return
	}

	// Kafka config; no brokers means events are not published
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "currency-conversions")

	return
}

// newRouter sets up routes and middleware.
func newRouter(
	validator handlers.Validator,
	converter handlers.Converter,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(httpMetrics))

	r.With(chimiddleware.AllowContentType("application/json")).
		Post("/currency/convert", handlers.NewConvertHandler(validator, converter))

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, rate provider facades, services and HTTP server.
// It handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	exchangeRateURL, currencyLayerURL, currencyLayerKey string,
	apiTimeoutSec int, selectorSeed uint64,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	conversionMetrics := metrics.NewConversionMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// Rate provider facades share one client; its timeout bounds every provider call
	client := &http.Client{Timeout: time.Duration(apiTimeoutSec) * time.Second}
	exchangeRateFacade := facades.NewExchangeRateAPIFacade(client, exchangeRateURL)
	currencyLayerFacade := facades.NewCurrencyLayerFacade(client, currencyLayerURL, currencyLayerKey)
	logger.Log.Infow("rate providers configured",
		"exchange_rate_api", exchangeRateURL,
		"currency_layer", currencyLayerURL,
		"timeout_seconds", apiTimeoutSec,
	)

	// Initialize services
	validatorService := services.NewValidatorService()
	converterService := services.NewConverterService(
		exchangeRateFacade,
		currencyLayerFacade,
		services.NewRandomSelector(selectorSeed),
		conversionMetrics,
	)

	// Conversion events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
		kafkaWriter = writer
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}
	eventService := services.NewConversionEventService(converterService, kafkaWriter)

	r := newRouter(validatorService, eventService, httpMetrics, registry,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
