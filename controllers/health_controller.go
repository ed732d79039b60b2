package controllers

import (
	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/services/container"
)

// HealthController handles health check requests
type HealthController struct {
	BaseControllerImpl
}

// HandleHealthFunc returns a gin handler for the health check
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &HealthController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}
		controller.Check()
	}
}

// Check reports service and database health
// @Summary      Health Check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (c *HealthController) Check() {
	status := gin.H{"service": "ok", "database": "ok"}

	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
	}

	response.Success(c.Context, status)
}
