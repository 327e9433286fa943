package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	productapp "github.com/muhammadheryan/variant-catalog/application/product"
	selectionapp "github.com/muhammadheryan/variant-catalog/application/selection"
	sessionapp "github.com/muhammadheryan/variant-catalog/application/session"
	variantapp "github.com/muhammadheryan/variant-catalog/application/variant"
	"github.com/muhammadheryan/variant-catalog/cmd/config"
	redisclient "github.com/muhammadheryan/variant-catalog/cmd/redis"
	_ "github.com/muhammadheryan/variant-catalog/docs"
	productRepo "github.com/muhammadheryan/variant-catalog/repository/product"
	redisRepo "github.com/muhammadheryan/variant-catalog/repository/redis"
	txRepo "github.com/muhammadheryan/variant-catalog/repository/tx"
	variantRepo "github.com/muhammadheryan/variant-catalog/repository/variant"
	"github.com/muhammadheryan/variant-catalog/resolver"
	"github.com/muhammadheryan/variant-catalog/thirdparty/rabbitmq"
	"github.com/muhammadheryan/variant-catalog/transport"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

// @title VARIANT CATALOG API
// @version 1.0
// @description Product variant resolution and stock availability API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	policy, err := resolver.ParsePolicy(cfg.Catalog.StockPolicy)
	if err != nil {
		logger.Fatal("invalid stock policy", zap.Error(err))
	}
	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.Stringer("stock_policy", policy))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Data-quality events are best effort
	var publisher rabbitmq.QualityPublisher
	if p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password); err != nil {
		logger.Warn("rabbitmq unavailable, ambiguity events only logged", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	VariantRepo := variantRepo.NewVariantRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Resolver := resolver.New(policy)
	VariantApp := variantapp.NewVariantApp(cfg, Resolver, TxRepo, VariantRepo, RedisRepo, publisher)
	ProductApp := productapp.NewProductApp(cfg, Resolver, ProductRepo, VariantApp)
	SelectionApp := selectionapp.NewSelectionApp(cfg, Resolver, VariantApp, RedisRepo)
	SessionApp := sessionapp.NewSessionApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(cfg.Internal.APIKey, SessionApp, ProductApp, VariantApp, SelectionApp)

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
