package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
	"github.com/staffdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	loanHandler LoanHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceClock))
					r.Post("/clock-in", attendanceHandler.ClockIn)
					r.Post("/clock-out", attendanceHandler.ClockOut)
				})
				r.Get("/my", attendanceHandler.GetMyAttendance)

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/", attendanceHandler.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.List)
				r.Delete("/{id}", leaveHandler.Cancel)

				r.With(middleware.RequirePermission(user.PermissionLeaveDecide)).
					Put("/{id}/decision", leaveHandler.Decide)
			})

			r.Route("/loans", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLoanApply)).
					Post("/", loanHandler.Apply)
				r.Get("/", loanHandler.List)
				r.Get("/my/balance", loanHandler.Balance)
				r.Delete("/{id}", loanHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLoanDecide))
					r.Patch("/{id}/decision", loanHandler.Decide)
					r.Patch("/{id}/settle", loanHandler.Settle)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.GetMyPayroll)
				r.Post("/{id}/payslip", payrollHandler.Payslip)

				r.With(middleware.RequirePermission(user.PermissionPayrollViewAll)).
					Get("/", payrollHandler.List)
				r.With(middleware.RequirePermission(user.PermissionPayrollToggle)).
					Patch("/{id}/status", payrollHandler.ToggleStatus)
				r.With(middleware.RequirePermission(user.PermissionPayrollEdit)).
					Put("/{id}", payrollHandler.Update)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Patch("/{id}/status", employeeHandler.UpdateStatus)
				})

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", employeeHandler.Register)
					r.Post("/leave-allotment", employeeHandler.AdjustLeaveAllotment)
					r.Post("/password-resets", employeeHandler.BulkResetPasswords)
				})
			})
		})
	})
	return r
}
