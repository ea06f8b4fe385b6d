package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/config"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/events"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/handler"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/middleware"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/notification"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/qr"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/realtime"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/repository"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/repository/memory"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/router"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/scheduler"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "CourtBooker"
	migrationsDir = "migrations"
)

type repositories struct {
	bookings ports.BookingRepo
	payments ports.PaymentRepo
	rules    ports.PricingRuleRepo
	vouchers ports.VoucherRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	repos      repositories
	bus        *events.Bus
	hub        *realtime.Hub
	rabbit     *notification.RabbitPublisher
	redis      *redis.Client
	relay      *notification.RedisRelay
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initEvents(); err != nil {
		return nil, fmt.Errorf("init events: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	if a.cfg.Storage.Driver == "memory" {
		store := memory.New()
		a.repos = repositories{bookings: store, payments: store, rules: store, vouchers: store}
		a.log.Warn("using in-memory storage, state is lost on restart")
		return nil
	}

	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return fmt.Errorf("init db: %w", err)
	}

	a.repos = repositories{
		bookings: repository.NewBookingRepo(a.db),
		payments: repository.NewPaymentRepo(a.db),
		rules:    repository.NewPricingRuleRepo(a.db),
		vouchers: repository.NewVoucherRepo(a.db),
	}
	return nil
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

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

// initEvents builds the bus and subscribes every configured transport.
func (a *App) initEvents() error {
	a.bus = events.NewBus(a.cfg.Events.QueueSize, a.log)

	a.hub = realtime.NewHub(a.cfg.HTTP.AllowedOrigins, a.log)
	a.bus.Subscribe(a.hub)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.CashierChatID, a.repos.payments, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	a.bus.Subscribe(tg)

	if a.cfg.RabbitMQ.URL != "" {
		a.rabbit, err = notification.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
		if err != nil {
			return fmt.Errorf("init rabbitmq publisher: %w", err)
		}
		a.bus.Subscribe(a.rabbit)
	}

	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err = a.redis.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		a.relay = notification.NewRedisRelay(a.redis, a.cfg.Redis.Channel, uuid.New().String(), a.log)
		a.bus.Subscribe(a.relay)
	}

	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	policy := service.Policy{
		HoldTTL:            a.cfg.Booking.HoldTTL,
		DepositPercent:     a.cfg.Booking.DepositPercent,
		CheckInEarlyWindow: a.cfg.Booking.CheckInEarlyWindow,
		MaxRangeDays:       a.cfg.Booking.MaxRangeDays,
		SweepBatchSize:     a.cfg.Scheduler.BatchSize,
		Location:           loc,
	}
	clock := service.SystemClock{}

	bookingService := service.NewBookingService(
		a.repos.bookings,
		a.repos.payments,
		a.repos.rules,
		a.repos.vouchers,
		a.bus,
		qr.NewSigner(a.cfg.QR.Secret),
		clock,
		policy,
		a.log,
	)
	paymentService := service.NewPaymentService(a.repos.payments, a.bus, clock, policy, a.log)
	occurrenceService := service.NewOccurrenceService(a.repos.bookings, a.bus, clock, policy, a.log)
	pricingService := service.NewPricingService(a.repos.rules, a.log)

	a.scheduler = scheduler.New(
		paymentService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		bookingService,
		paymentService,
		occurrenceService,
		pricingService,
		qr.PNG,
		a.hub.ServeWS,
	)
	limiter := middleware.NewRateLimiter(a.cfg.HTTP.RateLimitRPS, a.cfg.HTTP.RateLimitBurst)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		limiter.Limit(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	c := cors.New(cors.Options{
		AllowedOrigins: a.cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      c.Handler(r),
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

	if a.relay != nil {
		go func() {
			err := a.relay.Listen(ctx, func(e domain.Event) {
				_ = a.hub.Deliver(ctx, e)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("redis relay stopped", logger.String("error", err.Error()))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	a.hub.Close()
	a.bus.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "event bus drained")

	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			a.log.Warn("close rabbitmq", logger.String("error", err.Error()))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
