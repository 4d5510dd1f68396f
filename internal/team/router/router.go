// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendeeRepository "github.com/aerostudent/teamreg/internal/attendee/repository"
	attendeeService "github.com/aerostudent/teamreg/internal/attendee/service"
	"github.com/aerostudent/teamreg/internal/sport/provider"
	"github.com/aerostudent/teamreg/internal/team/handler"
	"github.com/aerostudent/teamreg/internal/team/repository"
	"github.com/aerostudent/teamreg/internal/team/service"
)

// RegisterRoutes registers team module routes.
// guard runs before every route that writes to the database.
func RegisterRoutes(
	r gin.IRouter,
	db *gorm.DB,
	rules *provider.Provider,
	logger *zap.SugaredLogger,
	guard gin.HandlerFunc,
) {
	attendees := attendeeService.New(attendeeRepository.New(db, logger), rules, logger)
	svc := service.New(repository.New(db, logger), attendees, rules, db, logger)
	h := handler.New(svc, logger)

	g := r.Group("/team")
	g.GET("/can_register/:sport/:ref", h.CanRegister)
	g.GET("/:uuid", h.GetTeam)

	w := g.Group("", guard)
	w.POST("/create", h.CreateTeam)
	w.POST("/:uuid/members", h.AddMember)
	w.DELETE("/:uuid/members/:ref", h.RemoveMember)
}
