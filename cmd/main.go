package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	addressapp "github.com/muhammadheryan/contact-book/application/address"
	contactapp "github.com/muhammadheryan/contact-book/application/contact"
	userapp "github.com/muhammadheryan/contact-book/application/user"
	"github.com/muhammadheryan/contact-book/cmd/config"
	_ "github.com/muhammadheryan/contact-book/docs"
	addressRepo "github.com/muhammadheryan/contact-book/repository/address"
	contactRepo "github.com/muhammadheryan/contact-book/repository/contact"
	"github.com/muhammadheryan/contact-book/repository/migrate"
	userRepo "github.com/muhammadheryan/contact-book/repository/user"
	"github.com/muhammadheryan/contact-book/transport"
	"github.com/muhammadheryan/contact-book/utils/logger"
	"go.uber.org/zap"
)

// @title CONTACT BOOK API
// @version 1.0
// @description Multi-tenant contact book API Documentation
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

	// Apply pending schema migrations
	if err := migrate.Run(cfg.GetMigrateURL(), cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(UserRepo)
	ContactApp := contactapp.NewContactApp(ContactRepo)
	AddressApp := addressapp.NewAddressApp(ContactRepo, AddressRepo)

	httpTransport := transport.NewTransport(UserApp, ContactApp, AddressApp)

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
