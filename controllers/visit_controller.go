package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/services"
	"sitegate-http-service/services/container"
)

// VisitController handles monthly visit statistics requests
type VisitController struct {
	BaseControllerImpl
}

// HandleVisitFunc returns a gin handler dispatching visit methods
func HandleVisitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &VisitController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getCount":
			controller.GetCount()
		case "getHistory":
			controller.GetHistory()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *VisitController) visitService() services.InterfaceVisitCounterService {
	return c.Container.GetService("visit").(services.InterfaceVisitCounterService)
}

// GetCount returns the visit count of a supplier for one month
// @Summary      Get Monthly Visit Count
// @Description  Returns zero when the supplier has no visits for the month
// @Tags         Visits
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Param        month query string true "Month key, YYYY-MM" example:"2024-06"
// @Success      200  {object}  response.Response
// @Router       /suppliers/{id}/visits/count [get]
// @Security     BearerAuth
func (c *VisitController) GetCount() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	monthKey := c.Context.Query("month")
	if len(monthKey) != 7 {
		response.ParamError(c.Context, "month parameter must be YYYY-MM")
		return
	}

	count, err := c.visitService().GetCount(uint(id), monthKey)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"supplier_id": id,
		"month_key":   monthKey,
		"visit_count": count,
	})
}

// GetHistory returns the visit months of a supplier, newest first
// @Summary      Get Monthly Visit History
// @Tags         Visits
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Param        limit query int false "Maximum number of months, default is 12"
// @Success      200  {object}  response.Response
// @Router       /suppliers/{id}/visits [get]
// @Security     BearerAuth
func (c *VisitController) GetHistory() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	limit, _ := strconv.Atoi(c.Context.DefaultQuery("limit", "12"))

	visits, err := c.visitService().History(uint(id), limit)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"supplier_id": id,
		"visits":      visits,
	})
}
