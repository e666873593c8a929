package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "safiridocs/internal/app"
	"safiridocs/internal/handlers/rest/booking_delivery_post"
	"safiridocs/internal/handlers/rest/booking_pickup_post"
	"safiridocs/internal/handlers/rest/booking_refuse_post"
	"safiridocs/internal/handlers/rest/booking_status_post"
	"safiridocs/internal/handlers/rest/chat_message_post"
	"safiridocs/internal/handlers/rest/chat_messages_get"
	"safiridocs/internal/handlers/rest/chat_read_put"
	"safiridocs/internal/handlers/rest/healthcheck_head"
	"safiridocs/internal/handlers/rest/login_post"
	"safiridocs/internal/handlers/rest/me_get"
	"safiridocs/internal/handlers/rest/payment_initiate_post"
	"safiridocs/internal/handlers/rest/payment_payout_post"
	"safiridocs/internal/handlers/rest/payment_status_get"
	"safiridocs/internal/handlers/rest/payment_webhook_post"
	"safiridocs/internal/handlers/rest/ping_get"
	"safiridocs/internal/handlers/rest/request_delete"
	"safiridocs/internal/handlers/rest/request_get"
	"safiridocs/internal/handlers/rest/request_match_post"
	"safiridocs/internal/handlers/rest/request_post"
	"safiridocs/internal/handlers/rest/request_travelers_get"
	"safiridocs/internal/handlers/rest/requests_get"
	"safiridocs/internal/handlers/rest/review_post"
	"safiridocs/internal/handlers/rest/reviews_user_get"
	"safiridocs/internal/handlers/rest/signup_post"
	"safiridocs/internal/handlers/rest/trip_apply_post"
	"safiridocs/internal/handlers/rest/trip_get"
	"safiridocs/internal/handlers/rest/trip_post"
	"safiridocs/internal/handlers/rest/trip_requests_get"
	"safiridocs/internal/handlers/rest/trips_get"
	"safiridocs/internal/handlers/rest/verify_otp_post"
	"safiridocs/internal/pkg/config"
	"safiridocs/internal/pkg/dotenv"
	metrics_system "safiridocs/internal/pkg/metrics"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/pkg/middlewares/graceful_shutdown"
	"safiridocs/internal/pkg/middlewares/metrics"
	"safiridocs/internal/pkg/middlewares/rate_limiter"
	"safiridocs/internal/pkg/middlewares/timeout"
	"safiridocs/internal/pkg/postgres"
	"safiridocs/pkg/logger"
	"safiridocs/pkg/logger/zap_adapter"
	"safiridocs/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting safiridocs application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные маршруты: аутентификация и вебхук провайдера платежей
	router.Handle("/signup", signup_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/login", login_post.New(log, app.ServiceUser, app.ServiceToken)).Methods("POST")
	router.Handle("/verify-otp", verify_otp_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/payments/webhook/flutterwave", payment_webhook_post.New(log, app.ServicePayment)).Methods("POST")

	// маршруты под Bearer-токеном
	api := router.PathPrefix("/").Subrouter()
	api.Use(auth.Middleware(log, app.ServiceToken, app.ServiceUser))

	api.Handle("/me", me_get.New(log)).Methods("GET")

	api.Handle("/requests", request_post.New(log, app.ServiceRequest)).Methods("POST")
	api.Handle("/requests", requests_get.New(log, app.ServiceRequest)).Methods("GET")
	api.Handle("/requests/{id}", request_get.New(log, app.ServiceRequest)).Methods("GET")
	api.Handle("/requests/{id}", request_delete.New(log, app.ServiceRequest)).Methods("DELETE")
	api.Handle("/requests/{id}/travelers", request_travelers_get.New(log, app.ServiceMatching)).Methods("GET")
	api.Handle("/requests/{id}/match", request_match_post.New(log, app.ServiceMatching)).Methods("POST")

	api.Handle("/bookings/{request_id}/confirm-pickup", booking_pickup_post.New(log, app.ServiceRequest)).Methods("POST")
	api.Handle("/bookings/{request_id}/update-status", booking_status_post.New(log, app.ServiceRequest)).Methods("POST")
	api.Handle("/bookings/{request_id}/confirm-delivery", booking_delivery_post.New(log, app.ServiceRequest)).Methods("POST")
	api.Handle("/bookings/{request_id}/refuse", booking_refuse_post.New(log, app.ServiceRequest)).Methods("POST")

	api.Handle("/trips", trip_post.New(log, app.ServiceTrip)).Methods("POST")
	api.Handle("/trips", trips_get.New(log, app.ServiceTrip)).Methods("GET")
	api.Handle("/trips/{id}", trip_get.New(log, app.ServiceTrip)).Methods("GET")
	api.Handle("/trips/{id}/requests", trip_requests_get.New(log, app.ServiceMatching)).Methods("GET")
	api.Handle("/trips/{id}/apply", trip_apply_post.New(log, app.ServiceMatching)).Methods("POST")

	api.Handle("/payments/initiate", payment_initiate_post.New(log, app.ServicePayment)).Methods("POST")
	api.Handle("/payments/{id}/status", payment_status_get.New(log, app.ServicePayment)).Methods("GET")
	api.Handle("/payments/payout/{payment_id}", payment_payout_post.New(log, app.ServicePayment)).Methods("POST")

	api.Handle("/reviews", review_post.New(log, app.ServiceReview)).Methods("POST")
	api.Handle("/reviews/user/{user_id}", reviews_user_get.New(log, app.ServiceReview)).Methods("GET")

	api.Handle("/chat/{request_id}/messages", chat_messages_get.New(log, app.ServiceChat)).Methods("GET")
	api.Handle("/chat/{request_id}/messages", chat_message_post.New(log, app.ServiceChat)).Methods("POST")
	api.Handle("/chat/{request_id}/read", chat_read_put.New(log, app.ServiceChat)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
