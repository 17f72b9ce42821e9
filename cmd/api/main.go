package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/centraljuan/payroll-backend-go/internal/config"
	appHTTP "github.com/centraljuan/payroll-backend-go/internal/handler/http"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/jwt"
	"github.com/centraljuan/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/centraljuan/payroll-backend-go/internal/service/attendance"
	leaveService "github.com/centraljuan/payroll-backend-go/internal/service/leave"
	loanService "github.com/centraljuan/payroll-backend-go/internal/service/loan"
	payrollService "github.com/centraljuan/payroll-backend-go/internal/service/payroll"
	retroService "github.com/centraljuan/payroll-backend-go/internal/service/retro"
	rewardService "github.com/centraljuan/payroll-backend-go/internal/service/reward"
	scheduleService "github.com/centraljuan/payroll-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workTimeRepo := postgresql.NewWorkTimeRepository(db)
	shiftScheduleRepo := postgresql.NewShiftScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	retroRepo := postgresql.NewRetroRepository(db)
	rewardRepo := postgresql.NewRewardRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	scheduleSvc := scheduleService.NewScheduleService(db, workTimeRepo, shiftScheduleRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleSvc, leaveRepo, holidayRepo, cfg.Payroll.MinDailyHours, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	loanSvc := loanService.NewLoanService(loanRepo, cfg.Payroll.LoanGraceDays)
	rewardSvc := rewardService.NewRewardService(rewardRepo)
	retroSvc := retroService.NewRetroService(db, retroRepo, payrollRepo)
	payrollSvc := payrollService.NewPayrollService(
		db, payrollRepo, employeeRepo, attendanceRepo, retroRepo,
		attendanceSvc, leaveSvc, loanSvc, rewardSvc,
		cfg.Payroll.Cadence, logger,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	retroHandler := appHTTP.NewRetroHandler(retroSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc, loanRepo)

	router := appHTTP.NewRouter(cfg, jwtService, payrollHandler, attendanceHandler, scheduleHandler, retroHandler, loanHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
