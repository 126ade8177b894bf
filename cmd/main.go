package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/auth"
	companyHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/company"
	createSaleHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/create_sale"
	deleteSaleHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/delete_sale"
	dniHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/dni"
	driversHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/drivers"
	getSeatMapHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/get_seat_map"
	packagesHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/packages"
	printDocumentsHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/print_documents"
	reportsHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/reports"
	routesHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/routes"
	salesHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/sales"
	shareWhatsappHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/share_whatsapp"
	updateSaleHandler "github.com/m04kA/WJL-TicketService/internal/api/handlers/update_sale"
	"github.com/m04kA/WJL-TicketService/internal/api/middleware"
	"github.com/m04kA/WJL-TicketService/internal/config"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/infra/archive"
	sessionCache "github.com/m04kA/WJL-TicketService/internal/infra/cache/session"
	"github.com/m04kA/WJL-TicketService/internal/infra/events"
	companyRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/company"
	driverRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/driver"
	"github.com/m04kA/WJL-TicketService/internal/infra/storage/migrator"
	parcelRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/parcel"
	reportRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/report"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
	userRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/user"
	"github.com/m04kA/WJL-TicketService/internal/integrations/dniservice"
	authService "github.com/m04kA/WJL-TicketService/internal/service/auth"
	companyService "github.com/m04kA/WJL-TicketService/internal/service/company"
	driversService "github.com/m04kA/WJL-TicketService/internal/service/drivers"
	packagesService "github.com/m04kA/WJL-TicketService/internal/service/packages"
	reportsService "github.com/m04kA/WJL-TicketService/internal/service/reports"
	routesService "github.com/m04kA/WJL-TicketService/internal/service/routes"
	salesService "github.com/m04kA/WJL-TicketService/internal/service/sales"
	"github.com/m04kA/WJL-TicketService/internal/session"
	createSaleUC "github.com/m04kA/WJL-TicketService/internal/usecase/create_sale"
	deleteSaleUC "github.com/m04kA/WJL-TicketService/internal/usecase/delete_sale"
	getSeatMapUC "github.com/m04kA/WJL-TicketService/internal/usecase/get_seat_map"
	updateSaleUC "github.com/m04kA/WJL-TicketService/internal/usecase/update_sale"
	"github.com/m04kA/WJL-TicketService/migrations"
	"github.com/m04kA/WJL-TicketService/pkg/dbmetrics"
	"github.com/m04kA/WJL-TicketService/pkg/logger"
	"github.com/m04kA/WJL-TicketService/pkg/metrics"
	"github.com/m04kA/WJL-TicketService/pkg/txmanager"
)

// businessMetrics счётчики продаж и сессий (Prometheus или заглушка)
type businessMetrics interface {
	IncSaleCreated()
	IncSaleDeleted()
	IncSeatConflict()
	IncPackageCreated()
	SetActiveSessions(n int)
}

// eventPublisher публикатор доменных событий (NATS или заглушка)
type eventPublisher interface {
	SaleCreated(ctx context.Context, sale *domain.Sale)
	SaleUpdated(ctx context.Context, sale *domain.Sale)
	SaleDeleted(ctx context.Context, sale *domain.Sale)
	PackageCreated(ctx context.Context, parcel *domain.Parcel)
	PackageStatusChanged(ctx context.Context, parcel *domain.Parcel)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.App.Env)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting WJL-TicketService (env=%s, timezone=%s)...", cfg.App.Env, cfg.App.Timezone)

	ctx := context.Background()
	loc := cfg.Location()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         dbmetrics.Recorder
		appMetrics       businessMetrics = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		appMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, recorder, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Пул pgx: миграции и отчёты
	pool, err := pgxpool.New(ctx, cfg.Database.URL())
	if err != nil {
		log.Fatal("Failed to create pgx pool: %v", err)
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		m, err := migrator.New(pool, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to create migrator: %v", err)
		}
		if err := m.Run(ctx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		_ = m.Close()
	}

	// Хранилище сессий в redis (если включено)
	var sessionStore session.Store
	if cfg.Redis.Enabled {
		redisClient, err := sessionCache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		sessionStore = sessionCache.NewStore(redisClient, cfg.Redis.KeyPrefix)
		log.Info("Session metadata stored in redis")
	}

	// Публикация событий в NATS (если включено)
	var publisher eventPublisher = events.Nop{}
	if cfg.NATS.Enabled {
		nc, err := events.Connect(cfg.NATS.URL, cfg.NATS.ClientName, log)
		if err != nil {
			log.Fatal("Failed to connect to nats: %v", err)
		}
		defer nc.Close()
		publisher = events.NewPublisher(nc, cfg.NATS.SubjectPrefix, log)
		log.Info("Domain events published to nats (prefix=%s)", cfg.NATS.SubjectPrefix)
	}

	// Архив билетов в S3 (если включено)
	var ticketArchive printDocumentsHandler.Archive
	if cfg.Documents.ArchiveEnabled {
		a, err := archive.NewFromRegion(cfg.Documents.S3Region, cfg.Documents.S3Bucket, cfg.Documents.S3Prefix)
		if err != nil {
			log.Fatal("Failed to initialize ticket archive: %v", err)
		}
		ticketArchive = a
		log.Info("Ticket archive enabled (bucket=%s)", cfg.Documents.S3Bucket)
	}

	// Интеграционный клиент поиска по DNI
	dniClient := dniservice.NewClient(
		cfg.DNIService.URL,
		cfg.DNIService.Token,
		time.Duration(cfg.DNIService.Timeout)*time.Second,
		log,
	)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	driverRepository := driverRepo.NewRepository(wrappedDB)
	routeRepository := routeRepo.NewRepository(wrappedDB)
	saleRepository := saleRepo.NewRepository(wrappedDB)
	parcelRepository := parcelRepo.NewRepository(wrappedDB)
	companyRepository := companyRepo.NewRepository(wrappedDB)
	reportRepository := reportRepo.NewRepository(pool)

	// Сессии и их фоновая очистка
	sessions := session.NewManager(cfg.Auth.SessionTimeout(), session.RealClock{}, sessionStore, log, appMetrics)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.Auth.SweepInterval())

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, sessions, cfg.Auth.JWTSecret, &authService.RealTimeProvider{}, log)
	if err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Fatal("Failed to bootstrap admin user: %v", err)
	}

	companySvc := companyService.NewService(companyRepository, domain.CompanyInfo{
		Name:    cfg.Company.Name,
		RUC:     cfg.Company.RUC,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
	}, log)
	driversSvc := driversService.NewService(driverRepository, saleRepository, log)
	routesSvc := routesService.NewService(routeRepository, saleRepository, parcelRepository, log)
	salesSvc := salesService.NewService(saleRepository, log)
	packagesSvc := packagesService.NewService(
		parcelRepository,
		publisher,
		appMetrics,
		&packagesService.RealTimeProvider{Location: loc},
		log,
	)
	reportsSvc := reportsService.NewService(
		reportRepository,
		saleRepository,
		routeRepository,
		companySvc,
		reportsService.RealTimeProvider{Location: loc},
		log,
	)

	// Инициализируем use cases
	createSaleUseCase := createSaleUC.NewUseCase(
		saleRepository,
		routeRepository,
		driverRepository,
		txMgr,
		publisher,
		appMetrics,
		&createSaleUC.RealTimeProvider{},
		log,
	)
	updateSaleUseCase := updateSaleUC.NewUseCase(
		saleRepository,
		routeRepository,
		driverRepository,
		txMgr,
		publisher,
		appMetrics,
		log,
	)
	deleteSaleUseCase := deleteSaleUC.NewUseCase(
		saleRepository,
		txMgr,
		publisher,
		appMetrics,
		&deleteSaleUC.RealTimeProvider{Location: loc},
		log,
	)
	getSeatMapUseCase := getSeatMapUC.NewUseCase(saleRepository, routeRepository, log)

	// Инициализируем handlers
	clock := reportsService.RealTimeProvider{Location: loc}

	auth := authHandler.NewHandler(authSvc, log)
	createSale := createSaleHandler.NewHandler(createSaleUseCase, log)
	updateSale := updateSaleHandler.NewHandler(updateSaleUseCase, log)
	deleteSale := deleteSaleHandler.NewHandler(deleteSaleUseCase, log)
	getSeatMap := getSeatMapHandler.NewHandler(getSeatMapUseCase, log)
	sales := salesHandler.NewHandler(salesSvc, log)
	packages := packagesHandler.NewHandler(packagesSvc, log)
	drivers := driversHandler.NewHandler(driversSvc, log)
	routes := routesHandler.NewHandler(routesSvc, log)
	company := companyHandler.NewHandler(companySvc, log)
	reports := reportsHandler.NewHandler(reportsSvc, log)
	dni := dniHandler.NewHandler(dniClient, log)
	printDocuments := printDocumentsHandler.NewHandler(salesSvc, packagesSvc, companySvc, ticketArchive, clock, log)
	shareWhatsapp := shareWhatsappHandler.NewHandler(salesSvc, packagesSvc, driverRepository, companySvc, clock, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (только действующая сессия)
	// ============================================================

	sessionOnly := api.PathPrefix("").Subrouter()
	sessionOnly.Use(middleware.Auth(authSvc, log))

	sessionOnly.HandleFunc("/auth/logout", auth.Logout).Methods(http.MethodPost)
	sessionOnly.HandleFunc("/auth/me", auth.Me).Methods(http.MethodGet)
	sessionOnly.HandleFunc("/seat-map", getSeatMap.Handle).Methods(http.MethodGet)
	sessionOnly.HandleFunc("/seat-map/reload", getSeatMap.Reload).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (сессия + право по HTTP методу)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log), middleware.MethodPermissions())

	configOnly := middleware.RequirePermission(domain.PermissionConfig)

	// --- Продажи билетов ---
	protected.HandleFunc("/sales", sales.List).Methods(http.MethodGet)
	protected.HandleFunc("/sales", createSale.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sales/{id}", sales.Get).Methods(http.MethodGet)
	protected.HandleFunc("/sales/{id}", updateSale.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/sales/{id}", deleteSale.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/sales/{id}/ticket", printDocuments.Ticket).Methods(http.MethodGet)
	protected.HandleFunc("/sales/{id}/whatsapp", shareWhatsapp.Sale).Methods(http.MethodGet)

	// --- Посылки ---
	protected.HandleFunc("/packages", packages.List).Methods(http.MethodGet)
	protected.HandleFunc("/packages", packages.Create).Methods(http.MethodPost)
	protected.HandleFunc("/packages/{id}", packages.Get).Methods(http.MethodGet)
	protected.HandleFunc("/packages/{id}", packages.Update).Methods(http.MethodPut)
	protected.HandleFunc("/packages/{id}", packages.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/packages/{id}/status", packages.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/packages/{id}/label", printDocuments.Label).Methods(http.MethodGet)
	protected.HandleFunc("/packages/{id}/whatsapp", shareWhatsapp.Package).Methods(http.MethodGet)

	// --- Справочники (изменение только с правом config) ---
	protected.HandleFunc("/drivers", drivers.List).Methods(http.MethodGet)
	protected.HandleFunc("/drivers/{id}", drivers.Get).Methods(http.MethodGet)
	protected.Handle("/drivers", configOnly(http.HandlerFunc(drivers.Create))).Methods(http.MethodPost)
	protected.Handle("/drivers/{id}", configOnly(http.HandlerFunc(drivers.Update))).Methods(http.MethodPut)
	protected.Handle("/drivers/{id}", configOnly(http.HandlerFunc(drivers.Delete))).Methods(http.MethodDelete)

	protected.HandleFunc("/routes", routes.List).Methods(http.MethodGet)
	protected.HandleFunc("/routes/{id}", routes.Get).Methods(http.MethodGet)
	protected.Handle("/routes", configOnly(http.HandlerFunc(routes.Create))).Methods(http.MethodPost)
	protected.Handle("/routes/{id}", configOnly(http.HandlerFunc(routes.Update))).Methods(http.MethodPut)
	protected.Handle("/routes/{id}", configOnly(http.HandlerFunc(routes.Delete))).Methods(http.MethodDelete)

	protected.HandleFunc("/company", company.Get).Methods(http.MethodGet)
	protected.Handle("/company", configOnly(http.HandlerFunc(company.Update))).Methods(http.MethodPut)

	// --- Поиск по DNI ---
	protected.HandleFunc("/dni/{dni}", dni.Handle).Methods(http.MethodGet)

	// --- Отчёты ---
	reportRoutes := protected.PathPrefix("/reports").Subrouter()
	reportRoutes.Use(middleware.RequirePermission(domain.PermissionReports))
	reportRoutes.HandleFunc("/drivers", reports.Drivers).Methods(http.MethodGet)
	reportRoutes.HandleFunc("/manifest", reports.Manifest).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopSweep()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
