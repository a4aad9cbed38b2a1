package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	adminResourceHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/admin_resource"
	createAppointmentHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/get_available_slots"
	getNotificationsHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/get_notifications"
	getSessionHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/get_session"
	initiatePaymentHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/initiate_payment"
	listAppointmentsHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/list_appointments"
	listDoctorsHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/list_doctors"
	listTestsHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/list_tests"
	loginHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/logout"
	paymentCallbackHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/payment_callback"
	registerHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/register"
	updateProfileHandler "github.com/m04kA/MediCare-Portal/internal/api/handlers/update_profile"
	"github.com/m04kA/MediCare-Portal/internal/api/middleware"
	"github.com/m04kA/MediCare-Portal/internal/authorizer"
	"github.com/m04kA/MediCare-Portal/internal/config"
	"github.com/m04kA/MediCare-Portal/internal/guard"
	"github.com/m04kA/MediCare-Portal/internal/infra/storage/localstorage"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/internal/navigation"
	"github.com/m04kA/MediCare-Portal/internal/notify"
	"github.com/m04kA/MediCare-Portal/internal/payment"
	appointmentsService "github.com/m04kA/MediCare-Portal/internal/service/appointments"
	authService "github.com/m04kA/MediCare-Portal/internal/service/auth"
	catalogService "github.com/m04kA/MediCare-Portal/internal/service/catalog"
	"github.com/m04kA/MediCare-Portal/internal/session"
	createAppointmentUC "github.com/m04kA/MediCare-Portal/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/MediCare-Portal/internal/usecase/get_available_slots"
	initiatePaymentUC "github.com/m04kA/MediCare-Portal/internal/usecase/initiate_payment"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
	"github.com/m04kA/MediCare-Portal/pkg/metrics"
)

// app общие зависимости всех команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	storage   localstorage.Repository
	persister *session.Persister
	store     *session.Store
	navigator *navigation.Navigator
	notifier  *notify.Notifier
	api       *medicareapi.Client

	closers []func() error
}

// newApp загружает конфигурацию и поднимает хранилище, сессию и клиента API.
// Сессия не восстанавливается: это делает вызывающий.
func newApp(ctx context.Context, cfgPath string) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, log.Close)

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
	}

	// Подключаем хранилище сессии
	if err := a.openStorage(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.persister = session.NewPersister(a.storage, cfg.Session.Key)
	a.store = session.NewStore(a.persister, a.metrics, log)
	a.navigator = navigation.NewNavigator()
	a.notifier = notify.NewNotifier(notify.DefaultCapacity)

	// Все запросы к API идут через авторизатор
	transport := authorizer.New(
		nil,
		a.persister,
		a.store,
		a.navigator,
		a.notifier,
		a.metrics,
		log,
		authorizer.Options{
			RedirectDelay: cfg.Authorizer.RedirectDelay(),
			LoginPath:     cfg.Authorizer.LoginPath,
		},
	)
	a.api = medicareapi.NewClient(cfg.API.BaseURL, cfg.API.TimeoutDuration(), transport, log)
	log.Info("MediCare API client initialized (url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	return a, nil
}

func (a *app) openStorage(ctx context.Context) error {
	sc := a.cfg.Session

	switch sc.Driver {
	case config.DriverMemory:
		a.storage = localstorage.NewMemoryRepository()

	case config.DriverFile:
		a.storage = localstorage.NewFileRepository(sc.FilePath)

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis at %s: %w", sc.Redis.Addr, err)
		}
		a.storage = localstorage.NewRedisRepository(client, sc.Namespace)

	case config.DriverPostgres:
		db, err := sql.Open("postgres", sc.Postgres.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		repo := localstorage.NewPostgresRepository(db, sc.Namespace)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		a.storage = repo

	default:
		return fmt.Errorf("unknown session driver %q", sc.Driver)
	}

	a.log.Info("Session storage initialized (driver=%s, key=%s)", sc.Driver, sc.Key)
	return nil
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	if a.navigator != nil {
		a.navigator.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

// router собирает HTTP surface портала
func (a *app) router() http.Handler {
	cfg, log := a.cfg, a.log

	// Инициализируем сервисы
	authSvc := authService.NewService(a.store, a.api, log)
	catalogSvc := catalogService.NewService(a.api, log)
	appointmentsSvc := appointmentsService.NewService(a.api, a.api, log)

	// Инициализируем use cases
	widget := payment.NewWidget(cfg.Payment.CheckoutTTL(), log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(a.api, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(a.store, a.api, a.api, log)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(a.api, widget, a.notifier, a.metrics, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(a.store, log)
	updateProfile := updateProfileHandler.NewHandler(authSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(catalogSvc, log)
	listTests := listTestsHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, cfg.Payment.TestMode, log)
	paymentCallback := paymentCallbackHandler.NewHandler(widget, log)
	getNotifications := getNotificationsHandler.NewHandler(a.notifier, log)
	adminResource := adminResourceHandler.NewHandler(appointmentsSvc, log)

	routeGuard := guard.New(a.store, a.metrics, log, guard.Options{
		GracePeriod: cfg.Guard.GracePeriod(),
		LoginPath:   cfg.Authorizer.LoginPath,
		HomePath:    cfg.Guard.HomePath,
	})
	limiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Отложенная навигация (после 401) уводит следующий запрос на login.
	// Повторный вход её снимает, опрос сессии и уведомлений не трогает.
	r.Use(a.navigator.PendingNavigationExcept(navigation.Exemptions{
		Resolve:     []string{"/api/v1/auth/"},
		Passthrough: []string{"/api/v1/session", "/api/v1/notifications", cfg.Metrics.Path},
	}))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(limiter.Middleware())
	auth.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	auth.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	auth.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tests", listTests.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (роль ADMIN)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(routeGuard.Middleware(guard.RequireAdmin))

	// Запись от имени пациента - admin-режим формы записи
	admin.HandleFunc("/appointments", createAppointment.HandleAdmin).Methods(http.MethodPost)

	admin.HandleFunc("/{resource}", adminResource.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/{resource}", adminResource.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/{resource}/{id}", adminResource.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/{resource}/{id}", adminResource.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/{resource}/{id}", adminResource.HandleDelete).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (любой вошедший пользователь)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(routeGuard.Middleware(guard.RequireUser))

	// --- Слоты ---
	protected.HandleFunc("/doctors/{doctorId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPatch)

	// --- Оплата ---
	protected.HandleFunc("/appointments/{appointmentId}/payment", initiatePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{orderId}/complete", paymentCallback.HandleComplete).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{orderId}/dismiss", paymentCallback.HandleDismiss).Methods(http.MethodPost)

	return r
}
