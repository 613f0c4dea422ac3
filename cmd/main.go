package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	contactapp "github.com/oleksandr-romashko/contacts-api/application/contact"
	reminderapp "github.com/oleksandr-romashko/contacts-api/application/reminder"
	userapp "github.com/oleksandr-romashko/contacts-api/application/user"
	"github.com/oleksandr-romashko/contacts-api/cmd/config"
	redisclient "github.com/oleksandr-romashko/contacts-api/cmd/redis"
	_ "github.com/oleksandr-romashko/contacts-api/docs"
	contactRepo "github.com/oleksandr-romashko/contacts-api/repository/contact"
	redisRepo "github.com/oleksandr-romashko/contacts-api/repository/redis"
	userRepo "github.com/oleksandr-romashko/contacts-api/repository/user"
	"github.com/oleksandr-romashko/contacts-api/thirdparty/rabbitmq"
	"github.com/oleksandr-romashko/contacts-api/transport"
	"github.com/oleksandr-romashko/contacts-api/utils/logger"
	validatorx "github.com/oleksandr-romashko/contacts-api/utils/validator"
)

// @title Contacts API
// @version 1.0
// @description Personal contacts directory with upcoming birthday celebrations
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init("contacts-api", cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

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

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Reminder publisher is optional; the API works without the broker
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, reminder dispatch disabled", zap.Error(err))
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, ContactRepo, RedisRepo)
	ContactApp := contactapp.NewContactApp(ContactRepo)

	var ReminderApp reminderapp.ReminderApp
	if publisher != nil {
		ReminderApp = reminderapp.NewReminderApp(UserRepo, ContactApp, publisher,
			cfg.Birthday.UpcomingDays, cfg.Birthday.MoveFeb29ToFeb28)
	}

	httpTransport := transport.NewTransport(cfg, db, UserApp, ContactApp, ReminderApp)

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
