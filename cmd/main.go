package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	inventoryapp "github.com/storescout/storescout/application/inventory"
	productapp "github.com/storescout/storescout/application/product"
	searchapp "github.com/storescout/storescout/application/search"
	storeapp "github.com/storescout/storescout/application/store"
	userapp "github.com/storescout/storescout/application/user"
	"github.com/storescout/storescout/cmd/config"
	redisclient "github.com/storescout/storescout/cmd/redis"
	_ "github.com/storescout/storescout/docs"
	inventoryRepo "github.com/storescout/storescout/repository/inventory"
	productRepo "github.com/storescout/storescout/repository/product"
	redisRepo "github.com/storescout/storescout/repository/redis"
	storeRepo "github.com/storescout/storescout/repository/store"
	txRepo "github.com/storescout/storescout/repository/tx"
	userRepo "github.com/storescout/storescout/repository/user"
	"github.com/storescout/storescout/thirdparty/mailer"
	"github.com/storescout/storescout/thirdparty/rabbitmq"
	"github.com/storescout/storescout/transport"
	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

// @title StoreScout API
// @version 1.0
// @description Storefront locator API: find nearby stores stocking a scanned product
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize RabbitMQ publisher for store review notifications
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Start the notification consumer feeding the SMTP mailer
	reviewMailer := mailer.New(cfg.SMTP)
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, reviewMailer)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start review consumer", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	StoreRepo := storeRepo.NewStoreRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)
	StoreApp := storeapp.NewStoreApp(TxRepo, StoreRepo, publisher)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, StoreRepo, ProductRepo, InventoryRepo)
	SearchApp := searchapp.NewSearchApp(InventoryRepo)

	httpTransport := transport.NewTransport(UserApp, ProductApp, StoreApp, InventoryApp, SearchApp, cfg.Scan.Timeout, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
