// Package router provides sport module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aerostudent/teamreg/internal/sport/handler"
	"github.com/aerostudent/teamreg/internal/sport/provider"
)

// RegisterRoutes registers sport module routes.
func RegisterRoutes(r gin.IRouter, rules *provider.Provider, logger *zap.SugaredLogger) {
	h := handler.New(rules, logger)

	r.GET("/sport/:name", h.GetSport)
}
