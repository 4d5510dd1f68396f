// Package router provides attendee module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aerostudent/teamreg/internal/attendee/handler"
	"github.com/aerostudent/teamreg/internal/attendee/repository"
	"github.com/aerostudent/teamreg/internal/attendee/service"
	"github.com/aerostudent/teamreg/internal/sport/provider"
)

// RegisterRoutes registers attendee module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, rules *provider.Provider, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, rules, logger)
	h := handler.New(svc, rules, logger)

	g := r.Group("/attendee")
	g.GET("/sports/:ref", h.GetSports)
	g.GET("/check/:sport/:gender/:ref", h.Check)
}
