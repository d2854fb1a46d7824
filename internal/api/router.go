package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/staffdesk/workforce-api/docs"
	"github.com/staffdesk/workforce-api/internal/api/handler"
	"github.com/staffdesk/workforce-api/internal/api/middleware"
	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis handles
// are only used by the readiness probe and may be nil.
type Dependencies struct {
	AuthService       ports.AuthService
	AccountService    ports.AccountService
	DepartmentService ports.DepartmentService
	EmployeeService   ports.EmployeeService
	RequestService    ports.RequestService

	Sessions middleware.SessionChecker
	Accounts middleware.AccountResolver

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	authHandler := handler.NewAuthHandler(deps.AuthService)
	accountHandler := handler.NewAccountHandler(deps.AccountService)
	departmentHandler := handler.NewDepartmentHandler(deps.DepartmentService)
	employeeHandler := handler.NewEmployeeHandler(deps.EmployeeService)
	requestHandler := handler.NewRequestHandler(deps.RequestService)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	auth := middleware.Auth(deps.JWTSecret, deps.Sessions, deps.Accounts)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify", authHandler.Verify)
	e.POST("/auth/logout", authHandler.Logout, auth)

	// --- Authenticated routes (any role) ---
	v1 := e.Group("/v1", auth)
	v1.GET("/profile", authHandler.Profile)
	v1.GET("/requests", requestHandler.ListMine)
	v1.POST("/requests", requestHandler.Submit)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))

	admin.GET("/accounts", accountHandler.List)
	admin.POST("/accounts", accountHandler.Create)
	admin.PUT("/accounts/:id", accountHandler.Update)
	admin.POST("/accounts/:id/reset-password", accountHandler.ResetPassword)
	admin.DELETE("/accounts/:id", accountHandler.Delete)

	admin.GET("/departments", departmentHandler.List)
	admin.POST("/departments", departmentHandler.Create)
	admin.PUT("/departments/:id", departmentHandler.Update)
	admin.DELETE("/departments/:id", departmentHandler.Delete)

	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.GET("/employees/:id/transfer-targets", employeeHandler.TransferTargets)
	admin.POST("/employees/:id/transfer", employeeHandler.Transfer)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	admin.GET("/requests", requestHandler.ListAll)
	admin.POST("/requests/:id/resolve", requestHandler.Resolve)

	// Health probes, no auth.
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// Operational endpoints.
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
