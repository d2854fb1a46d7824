package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/staffdesk/workforce-api/internal/api"
	"github.com/staffdesk/workforce-api/internal/core/service"
	"github.com/staffdesk/workforce-api/internal/infrastructure/config"
	mongodb "github.com/staffdesk/workforce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/staffdesk/workforce-api/internal/infrastructure/db/redis"
	"github.com/staffdesk/workforce-api/internal/infrastructure/queue"
	"github.com/staffdesk/workforce-api/internal/infrastructure/snapshot"
	"github.com/staffdesk/workforce-api/internal/infrastructure/store"
	"github.com/staffdesk/workforce-api/pkg/logger"
)

// @title        Workforce API
// @version      1.0
// @description  Employee, department and item-request administration service.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	var blob snapshot.Blob
	switch cfg.Snapshot.Backend {
	case "memory":
		blob = snapshot.NewMemoryBlob()
	case "file":
		blob = snapshot.NewFileBlob(cfg.Snapshot.File)
	case "mongo":
		blob = snapshot.NewMongoBlob(db, "snapshots")
	case "redis":
		blob = snapshot.NewRedisBlob(rdb, cfg.Snapshot.Key)
	default:
		log.Fatal().Str("backend", cfg.Snapshot.Backend).Msg("unknown snapshot backend")
	}

	st, err := store.New(ctx, blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("store initialisation failed")
	}

	accounts := st.Accounts()
	departments := st.Departments()
	employees := st.Employees()
	requests := st.Requests()

	audit := mongodb.NewAuditRepository(db)
	sessions := redisdb.NewSessionStore(rdb)
	verification := redisdb.NewVerificationStore(rdb)

	notifier := service.NewNotifierService(verification, log)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notifier, log)
	dispatcher.Start(ctx)

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	authService := service.NewAuthService(accounts, sessions, verification, dispatcher, audit, cfg.JWTSecret, tokenTTL, log)
	accountService := service.NewAccountService(accounts, audit, log)
	departmentService := service.NewDepartmentService(departments, audit, log)
	employeeService := service.NewEmployeeService(employees, departments, accounts, audit, log)
	requestService := service.NewRequestService(requests, dispatcher, audit, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:       authService,
		AccountService:    accountService,
		DepartmentService: departmentService,
		EmployeeService:   employeeService,
		RequestService:    requestService,
		Sessions:          sessions,
		Accounts:          accounts,
		Mongo:             db,
		Redis:             rdb,
		JWTSecret:         cfg.JWTSecret,
		Log:               log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
