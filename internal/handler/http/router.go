package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sitebook/sitebook-backend/internal/handler/http/middleware"
	"github.com/sitebook/sitebook-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Bill       BillHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string

	// UploadsDir is served under /uploads/ when set.
	UploadsDir string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Worker.Get)
					r.Put("/", h.Worker.Update)
					r.Delete("/", h.Worker.Delete)
					r.Put("/wage", h.Worker.UpdateDailyWage)
					r.Post("/photo", h.Worker.UploadPhoto)

					r.Get("/attendance", h.Attendance.List)
					r.Post("/attendance", h.Attendance.Mark)
					r.Get("/calendar", h.Attendance.Calendar)
					r.Get("/payments", h.Attendance.ListPayments)
					r.Post("/payments", h.Attendance.RecordPayment)

					r.Get("/payroll", h.Payroll.WorkerSummary)
					r.Get("/payroll/slip.pdf", h.Payroll.SalarySlip)
				})
			})

			r.Post("/attendance/refresh", h.Attendance.Refresh)
			r.Get("/payroll", h.Payroll.MonthlySummaries)

			r.Route("/bills", func(r chi.Router) {
				r.Get("/", h.Bill.List)
				r.Post("/", h.Bill.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Bill.Get)
					r.Put("/", h.Bill.Update)
					r.Delete("/", h.Bill.Delete)
					r.Post("/photo", h.Bill.UploadPhoto)
				})
			})
			r.Get("/materials", h.Bill.Materials)

			r.Get("/reports/monthly.xlsx", h.Report.MonthlyWorkbook)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/today", h.Dashboard.Today)
				r.Get("/overview", h.Dashboard.Overview)
			})
		})
	})
	return r
}
