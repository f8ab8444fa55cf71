package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/handler"
	"github.com/coursecart/coursecart-api/internal/middleware"
	"github.com/coursecart/coursecart-api/internal/models"
	"github.com/coursecart/coursecart-api/internal/repository"
	"github.com/coursecart/coursecart-api/internal/service"
	"github.com/coursecart/coursecart-api/pkg/config"
	"github.com/coursecart/coursecart-api/pkg/logger"
	corsmiddleware "github.com/coursecart/coursecart-api/pkg/middleware/cors"
	reqidmiddleware "github.com/coursecart/coursecart-api/pkg/middleware/requestid"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Auth    *service.AuthService
	Users   *service.UserService
	Classes *service.ClassService
	Carts   *service.SelectionService
	Pays    *service.PaymentService
	Metrics *service.MetricsService

	// UserRepo backs the role guard's per-request lookup.
	UserRepo *repository.UserRepository
}

// New assembles the gin engine with middleware and the full route table.
func New(deps Deps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	authRequired := middleware.JWT(deps.Auth)
	adminOnly := middleware.RequireRole(deps.UserRepo, models.RoleAdmin)
	instructorOnly := middleware.RequireRole(deps.UserRepo, models.RoleInstructor)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "CourseCart server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authH := handler.NewAuthHandler(deps.Auth)
	classH := handler.NewClassHandler(deps.Classes)
	selectH := handler.NewSelectionHandler(deps.Carts)
	userH := handler.NewUserHandler(deps.Users)
	payH := handler.NewPaymentHandler(deps.Pays)

	r.POST("/jwt", authH.SignToken)

	r.GET("/classes", authRequired, adminOnly, classH.List)
	r.GET("/classes/instructor/:email", authRequired, classH.ListByInstructor)
	r.GET("/classes/approved", classH.ListApproved)
	r.GET("/classes/popular", classH.ListPopular)
	r.POST("/classes", authRequired, instructorOnly, classH.Create)
	r.PATCH("/classes/:id/approve", classH.Approve)
	r.PATCH("/classes/:id/deny", classH.Deny)
	r.PUT("/classes/:id/feedback", classH.SetFeedback)
	r.PUT("/classes/:id/seats", classH.UpdateSeats)

	r.POST("/selections", selectH.Create)
	r.GET("/selections", selectH.List)
	r.GET("/selections/:id", selectH.Get)
	r.GET("/students/:email/selections", authRequired, selectH.ListByEmail)
	r.DELETE("/selections/:id", selectH.Delete)

	r.POST("/users", userH.Register)
	r.GET("/users", authRequired, adminOnly, userH.List)
	r.GET("/instructors", userH.ListInstructors)
	r.GET("/users/admin/:email", authRequired, userH.CheckAdmin)
	r.GET("/users/instructor/:email", authRequired, userH.CheckInstructor)
	r.PATCH("/users/:id/admin", userH.SetAdminRole)
	r.PATCH("/users/:id/instructor", userH.SetInstructorRole)
	r.DELETE("/users/:id", userH.Delete)

	r.POST("/create-payment-intent", payH.CreateIntent)
	r.POST("/payments", authRequired, payH.Record)
	r.GET("/payments", authRequired, payH.List)

	return r
}
