package http

import (
	"log/slog"
	"os"

	"github.com/centraljuan/payroll-backend-go/internal/config"
	"github.com/centraljuan/payroll-backend-go/internal/handler/http/middleware"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	retroHandler RetroHandler,
	loanHandler LoanHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/generate", payrollHandler.GeneratePayroll)
				r.Get("/", payrollHandler.ListPayrollRecords)
				r.Get("/{id}", payrollHandler.GetPayrollRecord)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/reconcile", attendanceHandler.Reconcile)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", scheduleHandler.Create)
				r.Get("/resolve", scheduleHandler.Resolve)
			})

			r.Route("/retro-adjustments", func(r chi.Router) {
				r.Post("/", retroHandler.CreateAndApply)
				r.Get("/totals", retroHandler.Totals)
				r.Delete("/{id}", retroHandler.Cancel)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/{id}/amortization", loanHandler.GetAmortization)
			})
		})
	})
	return r
}
