package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/sitebook/sitebook-backend/internal/config"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/user"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/fixtures"
	appHTTP "github.com/sitebook/sitebook-backend/internal/handler/http"
	"github.com/sitebook/sitebook-backend/internal/pkg/cron"
	"github.com/sitebook/sitebook-backend/internal/pkg/database"
	"github.com/sitebook/sitebook-backend/internal/pkg/jwt"
	"github.com/sitebook/sitebook-backend/internal/pkg/storage"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	"github.com/sitebook/sitebook-backend/internal/repository/postgresql"
	attendanceService "github.com/sitebook/sitebook-backend/internal/service/attendance"
	serviceAuth "github.com/sitebook/sitebook-backend/internal/service/auth"
	billService "github.com/sitebook/sitebook-backend/internal/service/bill"
	calendarService "github.com/sitebook/sitebook-backend/internal/service/calendar"
	dashboardService "github.com/sitebook/sitebook-backend/internal/service/dashboard"
	"github.com/sitebook/sitebook-backend/internal/service/file"
	payrollService "github.com/sitebook/sitebook-backend/internal/service/payroll"
	reportService "github.com/sitebook/sitebook-backend/internal/service/report"
	workerService "github.com/sitebook/sitebook-backend/internal/service/worker"
)

type repositories struct {
	users      user.UserRepository
	workers    worker.WorkerRepository
	attendance attendance.AttendanceRepository
	payments   payment.PaymentRepository
	bills      bill.BillRepository
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitebook"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeDB, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("initialize local storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage)

	store := attendanceService.NewAttendanceStore(repos.attendance, repos.payments)
	scheduler := cron.NewScheduler()
	cron.RegisterLedgerEviction(scheduler, store, cfg.Cache.LedgerEvictInterval, cfg.Cache.LedgerIdleTTL)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	authSvc := serviceAuth.NewAuthService(repos.users, JWTService)
	workerSvc := workerService.NewWorkerService(repos.workers, store, fileService)
	billSvc := billService.NewBillService(repos.bills, fileService)
	payrollSvc := payrollService.NewPayrollService(repos.workers, store, cfg.Payroll.DeductionKinds)
	calendarSvc := calendarService.NewCalendarService(store, workerSvc, cfg.Payroll.WeekStart)
	reportSvc := reportService.NewReportService(payrollSvc, billSvc)
	dashboardSvc := dashboardService.NewDashboardService(workerSvc, store, billSvc, payrollSvc)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Attendance: appHTTP.NewAttendanceHandler(store, workerSvc, calendarSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc, reportSvc),
		Bill:       appHTTP.NewBillHandler(billSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
		UploadsDir:     cfg.Storage.BasePath,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "db_driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		slog.Warn("Using in-memory database, data is lost on restart")
		repos := memory.NewRepositories(memory.NewDB())
		if cfg.App.SeedDemo {
			ids, err := fixtures.SeedDemo(ctx, fixtures.Repositories{
				Users:      repos.Users,
				Workers:    repos.Workers,
				Attendance: repos.Attendance,
				Payments:   repos.Payments,
				Bills:      repos.Bills,
			}, time.Now().UTC())
			if err != nil {
				return repositories{}, nil, err
			}
			slog.Info("Seeded demo data", "email", fixtures.DemoEmail, "user_id", ids.UserID)
		}
		return repositories{
			users:      repos.Users,
			workers:    repos.Workers,
			attendance: repos.Attendance,
			payments:   repos.Payments,
			bills:      repos.Bills,
		}, func() {}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return repositories{}, nil, err
	}

	return repositories{
		users:      postgresql.NewUserRepository(db),
		workers:    postgresql.NewWorkerRepository(db),
		attendance: postgresql.NewAttendanceRepository(db),
		payments:   postgresql.NewPaymentRepository(db),
		bills:      postgresql.NewBillRepository(db),
	}, db.Close, nil
}
