package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/auth"
	"github.com/vladamisici/food-analyzer-sub000/internal/config"
	"github.com/vladamisici/food-analyzer-sub000/internal/db"
	"github.com/vladamisici/food-analyzer-sub000/internal/middleware"
	"github.com/vladamisici/food-analyzer-sub000/internal/misc"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/achievements"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/analytics"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/export"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/goals"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/metrics"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used with the food analyzer mobile app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	progressCache *progress.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "food_analyzer_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("nutrition", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "nutrition-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		progressCache: progress.NewCache(params.Config.ProgressCacheSize),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	recordsRepo := records.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	achievementsRepo := achievements.NewRepo(s.dbPool)

	aggregator := progress.NewAggregator(recordsRepo, goalsRepo, s.progressCache)
	engine := achievements.NewEngine(achievements.Catalog())

	tracker := nutrition.NewTracker(
		recordsRepo,
		goalsRepo,
		achievementsRepo,
		aggregator,
		engine,
		s.metricsManager,
	)

	nutritionHandler := nutrition.NewHandler(tracker)
	r.HandleFunc("/nutrition/log", nutritionHandler.HandleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")
	r.HandleFunc("/nutrition/record/{id}", nutritionHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-record")

	recordsHandler := records.NewHandler(recordsRepo)
	r.HandleFunc("/nutrition/record/{id}", recordsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-record")
	r.HandleFunc("/nutrition/list/page/{page}/size/{size}", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/nutrition/day", recordsHandler.HandleListForDay).Methods("GET", "OPTIONS").Name("list-records-day")

	// goals writes go through the tracker, so cached progress and
	// achievements stay in sync
	goalsHandler := goals.NewHandler(tracker, s.metricsManager)
	r.HandleFunc("/goals", goalsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/goals", goalsHandler.HandleSet).Methods("POST", "PUT", "OPTIONS").Name("set-goals")
	r.HandleFunc("/goals/recommend", goalsHandler.HandleRecommend).Methods("POST", "OPTIONS").Name("recommend-goals")

	progressHandler := progress.NewHandler(aggregator)
	r.HandleFunc("/progress/daily", progressHandler.HandleDaily).Methods("GET", "OPTIONS").Name("daily-progress")
	r.HandleFunc("/progress/weekly", progressHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("weekly-progress")
	r.HandleFunc("/progress/monthly", progressHandler.HandleMonthly).Methods("GET", "OPTIONS").Name("monthly-progress")
	r.HandleFunc("/progress/streak", progressHandler.HandleStreak).Methods("GET", "OPTIONS").Name("streak")

	achievementsHandler := achievements.NewHandler(achievementsRepo, aggregator, engine)
	r.HandleFunc("/achievements", achievementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-achievements")
	r.HandleFunc("/achievements/progress", achievementsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("achievements-progress")

	analyticsHandler := analytics.NewHandler(analytics.NewAnalyzer(recordsRepo))
	r.HandleFunc("/analytics", analyticsHandler.HandleGet).Methods("GET", "OPTIONS").Name("analytics")

	exportHandler := export.NewHandler(export.NewExporter(recordsRepo), s.metricsManager)
	r.HandleFunc("/analytics/export/{format}", exportHandler.HandleExport).Methods("GET", "OPTIONS").Name("export")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.authService.Admin())
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
