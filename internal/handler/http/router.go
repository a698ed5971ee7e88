package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcehq/hrm-backend-go/internal/config"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/jwt"
)

// Handlers groups every resource handler wired into the router.
type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Department   DepartmentHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Claim        ClaimHandler
	Document     DocumentHandler
	Role         RoleHandler
	Setting      SettingHandler
	Announcement AnnouncementHandler
	Holiday      HolidayHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, permissions role.PermissionRepository, employees middleware.EmployeeResolver, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
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
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.ResolveIdentity(employees))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Route("/my/profile", func(r chi.Router) {
					r.Get("/", h.Employee.GetMyProfile)
					r.Post("/", h.Employee.CreateMyProfile)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleEmployee, role.ActionView))
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/me", h.Attendance.ListMine)
				r.Get("/summary", h.Attendance.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleAttendance, role.ActionView))
					r.Get("/", h.Attendance.ListByDate)
					r.Get("/{id}", h.Attendance.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Attendance.Create)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/me", h.Leave.ListMine)
				r.Get("/balances", h.Leave.Balances)

				r.Route("/types", func(r chi.Router) {
					r.Get("/", h.Leave.ListTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", h.Leave.CreateType)
						r.Put("/{id}", h.Leave.UpdateType)
						r.Delete("/{id}", h.Leave.DeleteType)
					})
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleLeave, role.ActionView))
					r.Get("/", h.Leave.List)
				})

				r.Get("/{id}", h.Leave.Get)
				r.Delete("/{id}", h.Leave.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleLeave, role.ActionApprove))
					r.Post("/{id}/decide", h.Leave.Decide)
				})
			})

			r.Route("/claims", func(r chi.Router) {
				r.Post("/", h.Claim.Submit)
				r.Get("/me", h.Claim.ListMine)
				r.Get("/summary", h.Claim.Summary)
				r.Get("/types", h.Claim.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleClaim, role.ActionView))
					r.Get("/", h.Claim.List)
				})

				r.Get("/{id}", h.Claim.Get)
				r.Delete("/{id}", h.Claim.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permissions, role.ModuleClaim, role.ActionApprove))
					r.Post("/{id}/decide", h.Claim.Decide)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.Document.Create)
				r.Post("/upload", h.Document.Upload)
				r.Get("/me", h.Document.ListMine)
				r.Get("/public", h.Document.ListPublic)
				r.Get("/search", h.Document.Search)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Document.List)
				})

				r.Get("/{id}", h.Document.Get)
				r.Put("/{id}", h.Document.Update)
				r.Delete("/{id}", h.Document.Delete)
			})

			// Admin only
			r.Route("/roles", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Role.List)
				r.Post("/", h.Role.Create)
				r.Get("/permissions", h.Role.ListPermissions)
				r.Post("/assign", h.Role.Assign)
				r.Get("/{id}", h.Role.Get)
				r.Put("/{id}", h.Role.Update)
				r.Delete("/{id}", h.Role.Delete)
				r.Get("/{id}/users", h.Role.UsersInRole)
				r.Delete("/{id}/users/{userID}", h.Role.Remove)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Setting.List)
				r.Get("/categories", h.Setting.ListCategories)
				r.Get("/key/{key}", h.Setting.GetByKey)
				r.Get("/{id}", h.Setting.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Setting.Create)
					r.Put("/{id}", h.Setting.Update)
					r.Delete("/{id}", h.Setting.Delete)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)
				r.Get("/active", h.Announcement.ListActive)
				r.Get("/{id}", h.Announcement.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Announcement.Create)
					r.Put("/{id}", h.Announcement.Update)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Get("/{id}", h.Holiday.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
