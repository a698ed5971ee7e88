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

	"github.com/pressly/goose/v3"

	"github.com/workforcehq/hrm-backend-go/internal/config"
	"github.com/workforcehq/hrm-backend-go/internal/fixtures"
	appHTTP "github.com/workforcehq/hrm-backend-go/internal/handler/http"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/cron"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/storage"
	"github.com/workforcehq/hrm-backend-go/internal/repository/postgresql"
	announcementService "github.com/workforcehq/hrm-backend-go/internal/service/announcement"
	attendanceService "github.com/workforcehq/hrm-backend-go/internal/service/attendance"
	authService "github.com/workforcehq/hrm-backend-go/internal/service/auth"
	claimService "github.com/workforcehq/hrm-backend-go/internal/service/claim"
	departmentService "github.com/workforcehq/hrm-backend-go/internal/service/department"
	documentService "github.com/workforcehq/hrm-backend-go/internal/service/document"
	employeeService "github.com/workforcehq/hrm-backend-go/internal/service/employee"
	holidayService "github.com/workforcehq/hrm-backend-go/internal/service/holiday"
	leaveService "github.com/workforcehq/hrm-backend-go/internal/service/leave"
	roleService "github.com/workforcehq/hrm-backend-go/internal/service/role"
	settingService "github.com/workforcehq/hrm-backend-go/internal/service/setting"
	"github.com/workforcehq/hrm-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrate(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := fixtures.Seed(ctx, db, cfg.App.AdminPassword); err != nil {
		slog.Error("Failed to seed baseline data", "error", err)
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	userRoleRepo := postgresql.NewUserRoleRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	claimTypeRepo := postgresql.NewClaimTypeRepository(db)
	claimRepo := postgresql.NewClaimRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			slog.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unsupported storage type", "type", cfg.Storage.Type)
		os.Exit(1)
	}

	authSvc := authService.NewService(db, jwtSvc, userRepo, roleRepo, userRoleRepo, employeeRepo)
	employeeSvc := employeeService.NewService(db, employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewService(db, departmentRepo)
	attendanceSvc := attendanceService.NewService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewService(db, leaveTypeRepo, leaveBalanceRepo, leaveRepo)
	claimSvc := claimService.NewService(db, claimTypeRepo, claimRepo)
	documentSvc := documentService.NewService(db, fileStorage, documentRepo)
	roleSvc := roleService.NewService(db, roleRepo, permissionRepo, userRoleRepo, userRepo)
	settingSvc := settingService.NewService(db, settingRepo)
	announcementSvc := announcementService.NewService(db, announcementRepo)
	holidaySvc := holidayService.NewService(db, holidayRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Claim:        appHTTP.NewClaimHandler(claimSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Role:         appHTTP.NewRoleHandler(roleSvc),
		Setting:      appHTTP.NewSettingHandler(settingSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, permissionRepo, employeeRepo, handlers)

	jobs := cron.NewMaintenanceJobs(db)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("mark-absentees", 6*time.Hour, jobs.MarkAbsentees)
	scheduler.AddJob("expire-documents", 12*time.Hour, jobs.ExpireDocuments)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

func migrate(db *database.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db.SQLDB(), ".")
}
