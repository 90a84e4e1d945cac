package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	catalogapp "github.com/bhslighting/backend/internal/application/catalog"
	cmsapp "github.com/bhslighting/backend/internal/application/cms"
	"github.com/bhslighting/backend/internal/application/media"
	partnerapp "github.com/bhslighting/backend/internal/application/partner"
	tradeapp "github.com/bhslighting/backend/internal/application/trade"
	"github.com/bhslighting/backend/internal/infrastructure/config"
	"github.com/bhslighting/backend/internal/infrastructure/event"
	"github.com/bhslighting/backend/internal/infrastructure/logger"
	"github.com/bhslighting/backend/internal/infrastructure/notification"
	"github.com/bhslighting/backend/internal/infrastructure/persistence"
	"github.com/bhslighting/backend/internal/infrastructure/storage"
	"github.com/bhslighting/backend/internal/infrastructure/telemetry"
	"github.com/bhslighting/backend/internal/interfaces/http/handler"
	"github.com/bhslighting/backend/internal/interfaces/http/middleware"
	"github.com/bhslighting/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracer, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Error("error shutting down tracer", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	if tracer.IsEnabled() {
		if err := db.EnableTracing(); err != nil {
			log.Warn("failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("database connected")

	mediaStorage, err := newStorage(cfg)
	if err != nil {
		log.Fatal("failed to initialize media storage", zap.Error(err))
	}

	articleRepo := persistence.NewGormArticleRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := eventBus.Stop(ctx); err != nil {
			log.Error("error stopping event bus", zap.Error(err))
		}
	}()

	var mailer tradeapp.Mailer
	if cfg.SMTP.Enabled {
		mailer, err = notification.NewSMTPMailer(&cfg.SMTP)
		if err != nil {
			log.Fatal("failed to initialize mailer", zap.Error(err))
		}
	} else {
		mailer = notification.NewNoopMailer(log)
	}
	eventBus.Subscribe(tradeapp.NewOrderCreatedHandler(mailer, log))

	articleService := cmsapp.NewArticleService(articleRepo, mediaStorage)
	categoryService := catalogapp.NewCategoryService(categoryRepo, mediaStorage)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, mediaStorage)
	orderService := tradeapp.NewOrderService(orderRepo, eventBus, log)
	partnerService := partnerapp.NewPartnerService(partnerRepo, mediaStorage)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if tracer.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	r := router.New(engine)
	r.Register(
		handler.NewArticleHandler(articleService),
		handler.NewCategoryHandler(categoryService),
		handler.NewProductHandler(productService),
		handler.NewOrderHandler(orderService),
		handler.NewPartnerHandler(partnerService),
		handler.NewSystemHandler(db),
	)

	if local, ok := mediaStorage.(*storage.LocalStorage); ok {
		r.Static("/uploads", local.Dir())
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited gracefully")
}

func newStorage(cfg *config.Config) (media.Storage, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3Storage(&cfg.Storage)
	}
	return storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
}
