package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendeeRouter "github.com/aerostudent/teamreg/internal/attendee/router"
	"github.com/aerostudent/teamreg/internal/health"
	"github.com/aerostudent/teamreg/internal/middleware"
	"github.com/aerostudent/teamreg/internal/sport/provider"
	sportRouter "github.com/aerostudent/teamreg/internal/sport/router"
	teamRouter "github.com/aerostudent/teamreg/internal/team/router"
)

// newRouter wires every module onto a fresh engine.
func newRouter(db *gorm.DB, rules *provider.Provider, secret string, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	r.GET("/health", health.New(db, rules, logger).Check)

	sportRouter.RegisterRoutes(r, rules, logger)
	attendeeRouter.RegisterRoutes(r, db, rules, logger)
	teamRouter.RegisterRoutes(r, db, rules, logger, middleware.RequireSecret(secret, logger))

	return r
}
