package main

import (
	"context"
	"errors"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/gw-token-swap/docs"
	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/handlers"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-token-swap/internal/repositories"
	"github.com/sbilibin2017/gw-token-swap/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Price source kinds accepted by PRICE_SOURCE.
const (
	priceSourceHTTP = "http"
	priceSourceGRPC = "grpc"
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PriceSource   string
	PricesURL     string
	PricesPoll    time.Duration
	PricesTimeout time.Duration

	SourceAsset   string
	DestAsset     string
	WalletBalance decimal.Decimal

	PostgresEnabled bool
	PgHost          string
	PgPort          int
	PgUser          string
	PgPassword      string
	PgDB            string
	PgMaxOpenConns  int
	PgMaxIdleConns  int

	RedisEnabled      bool
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	GWHost string
	GWPort string

	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-token-swap API
// @version 1.0.0
// @description Token swap service: live prices, two-way amount conversion and simulated swap submission
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, price feed, wallet, PostgreSQL, Redis, gRPC and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return time.Duration(n) * time.Second, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Price feed config
	cfg.PriceSource = getEnv("PRICE_SOURCE", priceSourceHTTP)
	if cfg.PriceSource != priceSourceHTTP && cfg.PriceSource != priceSourceGRPC {
		err = fmt.Errorf("PRICE_SOURCE: unsupported value %q", cfg.PriceSource)
		return
	}
	cfg.PricesURL = getEnv("PRICES_URL", facades.DefaultPricesURL)
	if cfg.PricesPoll, err = getSeconds("PRICES_POLL_SECOND", "60"); err != nil {
		return
	}
	if cfg.PricesTimeout, err = getSeconds("PRICES_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// Swap config
	cfg.SourceAsset = getEnv("SWAP_SOURCE_ASSET", "ETH")
	cfg.DestAsset = getEnv("SWAP_DEST_ASSET", "USDC")
	if cfg.WalletBalance, err = decimal.NewFromString(getEnv("WALLET_BALANCE", "10.00")); err != nil {
		err = fmt.Errorf("WALLET_BALANCE: %w", err)
		return
	}

	// PostgreSQL config
	if cfg.PostgresEnabled, err = strconv.ParseBool(getEnv("POSTGRES_ENABLED", "false")); err != nil {
		return
	}
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	if cfg.RedisEnabled, err = strconv.ParseBool(getEnv("REDIS_ENABLED", "false")); err != nil {
		return
	}
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.RedisExp, err = getSeconds("REDIS_EXP_SECOND", "30"); err != nil {
		return
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "swap-transactions")

	return
}

// run initializes the logger, price source, wallet, event publisher and HTTP server.
// It starts the swap engine, serves the API and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Price source
	var source services.PriceSource
	switch cfg.PriceSource {
	case priceSourceGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Log.Errorw("Failed to connect to gRPC service", "addr", grpcAddr, "error", err)
			return err
		}
		defer conn.Close()
		source = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		logger.Log.Infof("Reading prices from gRPC service at %s", grpcAddr)
	default:
		source = facades.NewPricesHTTPFacade(cfg.PricesURL, cfg.PricesTimeout)
		logger.Log.Infof("Reading prices from %s", cfg.PricesURL)
	}

	// Redis price cache
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		source = services.NewCachedPriceSource(source, repositories.NewPriceCacheRepository(rdb, cfg.RedisExp))
	}

	// Wallet balances
	var balances services.BalanceProvider = services.NewFixedBalanceProvider(cfg.WalletBalance)
	if cfg.PostgresEnabled {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PgMaxOpenConns)
		db.SetMaxIdleConns(cfg.PgMaxIdleConns)
		balances = repositories.NewWalletReaderRepository(db)
	}

	// Observers
	observers := []services.Observer{services.NewLoggingObserver()}
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()

		publisher := services.NewTransactionEventPublisher(writer, 64)
		go publisher.Run(ctxShutdown)
		observers = append(observers, publisher)
		logger.Log.Infof("Publishing transaction events to topic %s", cfg.KafkaTopic)
	}

	// Swap engine
	engine := services.NewEngine(
		services.NewPriceFeed(source, cfg.PricesPoll),
		balances,
		services.EngineConfig{
			SourceAsset: cfg.SourceAsset,
			DestAsset:   cfg.DestAsset,
			Timings:     services.DefaultTransactionTimings(),
		},
		observers...,
	)

	engineDone := make(chan error, 1)
	go func() {
		engineDone <- engine.Run(ctxShutdown)
	}()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(engine, cfg.AppHost, cfg.AppPort),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr = <-errChan:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	if err := <-engineDone; err != nil {
		logger.Log.Errorw("Swap engine stopped with error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return serveErr
}

// newRouter mounts the API under /api/v1 along with the swagger UI.
func newRouter(engine *services.Engine, appHost, appPort string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/prices", handlers.NewGetPricesHandler(engine))
		r.Post("/prices/refresh", handlers.NewRefreshPricesHandler(engine))

		r.Get("/swap", handlers.NewGetSwapHandler(engine))
		r.Put("/swap/source-amount", handlers.NewSetSourceAmountHandler(engine))
		r.Put("/swap/dest-amount", handlers.NewSetDestAmountHandler(engine))
		r.Put("/swap/source-asset", handlers.NewSetSourceAssetHandler(engine))
		r.Put("/swap/dest-asset", handlers.NewSetDestAssetHandler(engine))
		r.Post("/swap/flip", handlers.NewFlipSwapHandler(engine))
		r.Post("/swap/submit", handlers.NewSubmitSwapHandler(engine))
		r.Get("/swap/transaction", handlers.NewGetTransactionHandler(engine))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
