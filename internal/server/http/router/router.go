package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
	"github.com/pvlbrzn/ITSchool/internal/server/http/handlers"
	"github.com/pvlbrzn/ITSchool/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SchoolFacade, health handlers.HealthChecker, logger *slog.Logger) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	courseHandler := handlers.NewCourseHandler(facade)
	enrollmentHandler := handlers.NewEnrollmentHandler(facade)
	blogHandler := handlers.NewBlogHandler(facade)
	lessonHandler := handlers.NewLessonHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", handlers.Health(health))

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.GET("/courses/:id/lessons", lessonHandler.List)
	api.GET("/lessons/:id", lessonHandler.Get)
	api.GET("/blog", blogHandler.List)
	api.GET("/blog/:id", blogHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/user/profile", authHandler.Profile)
	authed.POST("/enrollments", enrollmentHandler.Submit)
	authed.GET("/enrollments", enrollmentHandler.Mine)
	authed.POST("/enrollments/:id/pay", enrollmentHandler.Pay)
	authed.GET("/payments", enrollmentHandler.MyPayments)

	manager := api.Group("/manager")
	manager.Use(middleware.AuthRequired(facade), middleware.ManagerRequired())
	manager.GET("/enrollments", enrollmentHandler.List)
	manager.POST("/enrollments/bulk", enrollmentHandler.Bulk)
	manager.POST("/enrollments/:id/approve", enrollmentHandler.Approve)
	manager.POST("/enrollments/:id/reject", enrollmentHandler.Reject)
	manager.GET("/payments", enrollmentHandler.Payments)
	manager.POST("/payments/bulk-delete", enrollmentHandler.DeletePayments)

	manager.POST("/courses", courseHandler.Create)
	manager.PUT("/courses/:id", courseHandler.Update)
	manager.DELETE("/courses/:id", courseHandler.Delete)
	manager.GET("/courses/:id/students", courseHandler.Students)
	manager.POST("/courses/:id/lessons", lessonHandler.Create)
	manager.POST("/courses/:id/lessons/bulk-delete", lessonHandler.BulkDelete)
	manager.PUT("/lessons/:id", lessonHandler.Update)
	manager.DELETE("/lessons/:id", lessonHandler.Delete)

	manager.GET("/users", userHandler.List)
	manager.POST("/users/bulk", userHandler.Bulk)
	manager.PUT("/users/:id", userHandler.Update)
	manager.DELETE("/users/:id", userHandler.Delete)

	manager.POST("/blog", blogHandler.Create)
	manager.PUT("/blog/:id", blogHandler.Update)
	manager.DELETE("/blog/:id", blogHandler.Delete)
	manager.POST("/blog/ingest", blogHandler.Ingest)

	return engine, nil
}
