package main

import (
	"fmt"
	"net/http"

	"github.com/staffdesk/workforce-backend-go/internal/config"
	appHTTP "github.com/staffdesk/workforce-backend-go/internal/handler/http"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/cron"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/workforce-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/workforce-backend-go/internal/service/auth"
	employeeService "github.com/staffdesk/workforce-backend-go/internal/service/employee"
	leaveService "github.com/staffdesk/workforce-backend-go/internal/service/leave"
	loanService "github.com/staffdesk/workforce-backend-go/internal/service/loan"
	payrollService "github.com/staffdesk/workforce-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	loanSvc := loanService.NewLoanService(loanRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, cfg.Cron.AutoClockOutCutoff)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		loanHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
