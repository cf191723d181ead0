// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/config"
	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/router/handler"
	"dispatch/internal/domain/entity"
	"dispatch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SubscriberHandler *handler.SubscriberHandler
	TaskHandler       *handler.TaskHandler
	ExecutorHandler   *handler.ExecutorHandler
	WorkTimeHandler   *handler.WorkTimeHandler
	PlaybackHandler   *handler.PlaybackHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	subscriberHandler *handler.SubscriberHandler
	taskHandler       *handler.TaskHandler
	executorHandler   *handler.ExecutorHandler
	workTimeHandler   *handler.WorkTimeHandler
	playbackHandler   *handler.PlaybackHandler
	analyticsHandler  *handler.AnalyticsHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		subscriberHandler: params.SubscriberHandler,
		taskHandler:       params.TaskHandler,
		executorHandler:   params.ExecutorHandler,
		workTimeHandler:   params.WorkTimeHandler,
		playbackHandler:   params.PlaybackHandler,
		analyticsHandler:  params.AnalyticsHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && (r.config.Metrics == nil || r.config.Metrics.Enabled) {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/telegram", r.authHandler.TelegramLogin)
	}

	// Everything below requires a principal. Auth is attached per prefix so
	// unknown paths still answer 404 rather than 401.
	auth := r.authMiddleware.Authenticate

	e.GET("/me", r.executorHandler.Me, auth)

	tasksGroup := e.Group("/tasks", auth)
	{
		tasksGroup.GET("", r.taskHandler.List)
		tasksGroup.POST("", r.taskHandler.Create)
		tasksGroup.GET("/:id", r.taskHandler.Get)
		tasksGroup.PUT("/:id", r.taskHandler.Update)
		tasksGroup.DELETE("/:id", r.taskHandler.Delete)
		tasksGroup.GET("/:id/executors", r.taskHandler.ListExecutors)
		tasksGroup.POST("/:id/executors/:execId", r.taskHandler.AssignExecutor)
		tasksGroup.DELETE("/:id/executors/:execId", r.taskHandler.RemoveExecutor)
	}

	executorsGroup := e.Group("/executors", auth)
	{
		executorsGroup.GET("", r.executorHandler.List)
		executorsGroup.GET("/search", r.executorHandler.Search)
		executorsGroup.POST("", r.executorHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Timesheet is admin only
	workTimesGroup := e.Group("/work_times", auth, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		workTimesGroup.GET("", r.workTimeHandler.List)
		workTimesGroup.POST("", r.workTimeHandler.Create)
		workTimesGroup.GET("/export", r.workTimeHandler.Export)
		workTimesGroup.GET("/:id", r.workTimeHandler.Get)
		workTimesGroup.PUT("/:id", r.workTimeHandler.Update)
		workTimesGroup.DELETE("/:id", r.workTimeHandler.Delete)
	}

	e.GET("/beacon-coordinates", r.playbackHandler.ByDay, auth)
	e.POST("/beacon-coordinates", r.playbackHandler.Record, auth)
	e.GET("/playback/track", r.playbackHandler.Track, auth)

	e.GET("/analytics/overdue", r.analyticsHandler.Overdue, auth)

	editors := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleMaster)
	subscribersGroup := e.Group("/subscribers", auth)
	{
		subscribersGroup.GET("", r.subscriberHandler.List)
		subscribersGroup.POST("", r.subscriberHandler.Create, editors)
		subscribersGroup.GET("/suggest/addresses", r.subscriberHandler.SuggestAddresses)
		subscribersGroup.GET("/suggest/houses", r.subscriberHandler.SuggestHouses)
		subscribersGroup.GET("/search", r.subscriberHandler.Search)
		subscribersGroup.GET("/:contract", r.subscriberHandler.Get)
		subscribersGroup.PUT("/:contract", r.subscriberHandler.Update, editors)
		subscribersGroup.GET("/:contract/qr", r.subscriberHandler.ContractQR)
	}

	e.GET("/geocode", r.subscriberHandler.Geocode, auth)
}
