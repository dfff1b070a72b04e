package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hithereguys123/Creative-Clicks/internal/backend"
	"github.com/hithereguys123/Creative-Clicks/internal/config"
	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow"
	"github.com/hithereguys123/Creative-Clicks/internal/handler"
	"github.com/hithereguys123/Creative-Clicks/internal/middleware"
	"github.com/hithereguys123/Creative-Clicks/internal/notification"
	"github.com/hithereguys123/Creative-Clicks/internal/router"
	"github.com/hithereguys123/Creative-Clicks/internal/scheduler"
	"github.com/hithereguys123/Creative-Clicks/internal/session"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	otlpConn   *grpc.ClientConn
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CreativeClicks",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	if a.cfg.Tracing.OTLPAddr == "" {
		a.log.Info("tracing disabled, no OTLP address configured")
		return nil
	}

	conn, err := grpc.DialContext(
		context.Background(),
		a.cfg.Tracing.OTLPAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("dial otlp collector: %w", err)
	}
	a.otlpConn = conn

	exporter, err := otlptracegrpc.New(context.Background(), otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
		logger.String("otlp_addr", a.cfg.Tracing.OTLPAddr),
		logger.String("service_name", a.cfg.Tracing.ServiceName),
	)

	return nil
}

func (a *App) initServices() error {
	studio, err := backend.New(a.cfg.Studio.BaseURL, a.cfg.Studio.Timeout, a.log)
	if err != nil {
		return fmt.Errorf("init studio client: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	catalog := domain.DefaultServiceCatalog()

	sessions := session.NewManager(func() *session.Flows {
		checkout := session.NewCheckoutRecorder()
		return &session.Flows{
			Booking:      flow.NewBookingFlow(studio, notifier, catalog, a.log),
			Registration: flow.NewRegistrationFlow(studio, checkout, notifier, a.log),
			Media:        flow.NewMediaFlow(studio, a.log),
			Contact:      flow.NewContactFlow(studio, notifier, a.log),
			Checkout:     checkout,
		}
	}, a.cfg.Session.TTL)

	a.scheduler = scheduler.New(
		sessions,
		a.cfg.Session.SweepInterval,
		a.log,
	)

	h := handler.NewHandler(catalog)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Session(sessions, a.cfg.Session.CookieMaxAge()),
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

	if a.otlpConn != nil {
		if err := a.otlpConn.Close(); err != nil {
			return fmt.Errorf("close otlp connection: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "OTLP connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
