package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/seller-dashboard/config"
	"github.com/alimikegami/seller-dashboard/internal/controller"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/cache/redis"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/database/postgres"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/mail"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/oauth"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/storage"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/tracing"
	localmiddleware "github.com/alimikegami/seller-dashboard/internal/middleware"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	"github.com/alimikegami/seller-dashboard/internal/scheduler"
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/dto"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo

	metrics       *echo.Echo
	redis         *goredis.Client
	closeKafka    func() error
	scheduler     gocron.Scheduler
	traceProvider *trace.TracerProvider
}

func setupLogger(level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	return logger
}

// Start wires every dependency and serves HTTP until StopServer is called.
func (app *App) Start() error {
	logger := setupLogger(app.Config.LogLevel)
	ctx := logger.WithContext(context.Background())

	if err := postgres.Migrate(ctx, app.DB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	traceProvider, err := tracing.InitTracing(ctx, app.Config.TracingConfig, app.Config.Environment)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing, spans will not be exported")
		traceProvider, _ = tracing.InitTracing(ctx, config.TracingConfig{}, app.Config.Environment)
	}
	app.traceProvider = traceProvider

	tracer := traceProvider.Tracer(tracing.ServiceName)

	e := echo.New()
	e.HideBanner = true
	app.Server = e

	e.IPExtractor, err = localmiddleware.CreateIPExtractor(app.Config.RateLimitConfig.TrustedProxies)
	if err != nil {
		return err
	}

	e.Use(middleware.Recover())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// continue the caller's trace when one is propagated
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, fmt.Sprintf("[%s] %s", req.Method, c.Path()))
			defer span.End()

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)
	e.Use(localmiddleware.CreateIPRateLimiter(app.Config.RateLimitConfig).Middleware)

	g := e.Group("/api/v1")

	if err := app.registerRoutes(ctx, g); err != nil {
		return err
	}

	g.GET("/ping", func(c echo.Context) error {
		return dto.WriteSuccessResponse(c, "Hello, World!")
	})

	app.scheduler.Start()

	logger.Info().Str("port", app.Config.ServicePort).Msg("Starting server")
	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) registerRoutes(ctx context.Context, g *echo.Group) error {
	conf := app.Config

	redisClient, err := redis.CreateRedisClient(ctx, conf.RedisConfig)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	app.redis = redisClient
	cache := redis.CreateCache(redisClient)

	var publisher service.EventPublisher
	if conf.KafkaConfig.BrokerAddress != "" {
		writer := kafka.CreateKafkaProducer(conf.KafkaConfig)
		app.closeKafka = writer.Close
		publisher = kafka.CreatePublisher(writer)
	}

	var uploader service.Uploader
	if conf.StorageConfig.Bucket != "" {
		bucket, err := storage.CreateBucketUploader(ctx, conf.StorageConfig)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create storage client, uploads are disabled")
		} else {
			uploader = bucket
		}
	}

	var mailer service.WelcomeMailer
	if m := mail.CreateMailer(conf.SMTPConfig); m != nil {
		mailer = m
	}

	isLoggedIn := localmiddleware.IsLoggedIn(conf.JWTSecret)

	productSvc := service.CreateProductService(repository.CreateProductRepository(app.DB), publisher, conf.ProductPageSize)
	paymentSvc := service.CreatePaymentService(repository.CreatePaymentRepository(app.DB), publisher)
	sellerSvc := service.CreateSellerService(repository.CreateSellerRepository(app.DB), publisher, mailer)
	authSvc := service.CreateAuthService(oauth.CreateGoogleProvider(conf.GoogleConfig), cache, sellerSvc, conf.JWTSecret)
	categorySvc := service.CreateCategoryService(repository.CreateCategoryRepository(app.DB), cache, conf.CategoryCache.TTL)
	orderSvc := service.CreateOrderService(repository.CreateOrderRepository(app.DB))
	uploadSvc := service.CreateUploadService(uploader, conf.StorageConfig.MaxUploadBytes)

	controller.CreateAuthController(g, authSvc)
	controller.CreateCategoryController(g, categorySvc)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreatePaymentController(g, paymentSvc, isLoggedIn)
	controller.CreateSellerController(g, sellerSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)
	controller.CreateUploadController(g, uploadSvc, isLoggedIn)

	app.scheduler, err = scheduler.CreateScheduler(categorySvc, conf.CategoryCache.RefreshInterval)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errs = append(errs, app.scheduler.Shutdown())
	}
	if app.closeKafka != nil {
		errs = append(errs, app.closeKafka())
	}
	if app.redis != nil {
		errs = append(errs, app.redis.Close())
	}
	if app.traceProvider != nil {
		errs = append(errs, app.traceProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
