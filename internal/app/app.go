package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/auth"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/config"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/handler"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/middleware"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/notification"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/repository"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/router"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/scheduler"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/storage"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"WorkshopBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	workshopRepo := repository.NewWorkshopRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)

	notifier := notification.NewBrevoNotifier(
		a.cfg.Brevo.APIKey,
		a.cfg.Brevo.SenderName,
		a.cfg.Brevo.SenderEmail,
		a.log,
	)

	images, err := storage.NewS3Store(context.Background(), storage.S3Config{
		Region:          a.cfg.S3.Region,
		AccessKeyID:     a.cfg.S3.AccessKeyID,
		SecretAccessKey: a.cfg.S3.SecretAccessKey,
		Bucket:          a.cfg.S3.Bucket,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	tokens := auth.NewJWTService(a.cfg.JWT.Secret, a.cfg.JWT.TTL)

	workshopService := service.NewWorkshopService(workshopRepo, images)
	bookingService := service.NewBookingService(bookingRepo, workshopRepo, notifier, a.log)
	adminService := service.NewAdminService(adminRepo, tokens)

	if a.cfg.Admin.Email != "" {
		if err := adminService.Bootstrap(
			context.Background(),
			a.cfg.Admin.Email,
			a.cfg.Admin.Name,
			a.cfg.Admin.Password,
		); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "admin account ensured",
			logger.String("email", a.cfg.Admin.Email),
		)
	} else {
		a.log.LogAttrs(context.Background(), logger.WarnLevel,
			"no bootstrap admin configured, dashboard login is unavailable until an account is created",
		)
	}

	a.scheduler = scheduler.New(
		workshopService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(workshopService, bookingService, adminService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminOnly(tokens),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
