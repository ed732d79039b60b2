package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/models"
	"sitegate-http-service/services"
	"sitegate-http-service/services/container"
)

// ScheduleController handles planned presence requests
type ScheduleController struct {
	BaseControllerImpl
}

// HandleScheduleFunc returns a gin handler dispatching schedule methods
func HandleScheduleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &ScheduleController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getSchedules":
			controller.GetSchedules()
		case "getSchedule":
			controller.GetSchedule()
		case "createSchedule":
			controller.CreateSchedule()
		case "updateSchedule":
			controller.UpdateSchedule()
		case "deleteSchedule":
			controller.DeleteSchedule()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *ScheduleController) scheduleService() services.InterfaceScheduleService {
	return c.Container.GetService("schedule").(services.InterfaceScheduleService)
}

// GetSchedules lists planned presence windows
// @Summary      Get Schedule List
// @Tags         Schedules
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        date query string false "Filter by day (RFC 3339)"
// @Success      200  {object}  response.Response
// @Router       /schedules [get]
// @Security     BearerAuth
func (c *ScheduleController) GetSchedules() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	var date *time.Time
	if d := c.Context.Query("date"); d != "" {
		t, err := time.Parse(time.RFC3339, d)
		if err != nil {
			response.ParamError(c.Context, "invalid date parameter")
			return
		}
		date = &t
	}

	schedules, total, err := c.scheduleService().GetSchedules(page, pageSize, date)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"schedules":  schedules,
	})
}

// GetSchedule fetches one schedule entry
// @Summary      Get Schedule By ID
// @Tags         Schedules
// @Produce      json
// @Param        id path int true "Schedule ID"
// @Success      200  {object}  response.Response{data=models.SchedulePresence}
// @Failure      404  {object}  response.Response
// @Router       /schedules/{id} [get]
// @Security     BearerAuth
func (c *ScheduleController) GetSchedule() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	schedule, err := c.scheduleService().GetScheduleByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, schedule)
}

// CreateSchedule creates a planned presence window
// @Summary      Create Schedule
// @Tags         Schedules
// @Accept       json
// @Produce      json
// @Param        request body models.SchedulePresence true "Schedule fields"
// @Success      200  {object}  response.Response{data=models.SchedulePresence}
// @Failure      400  {object}  response.Response
// @Router       /schedules [post]
// @Security     BearerAuth
func (c *ScheduleController) CreateSchedule() {
	var schedule models.SchedulePresence
	if err := c.Context.ShouldBindJSON(&schedule); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	if err := c.scheduleService().CreateSchedule(&schedule); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, schedule)
}

// UpdateSchedule updates schedule fields
// @Summary      Update Schedule
// @Tags         Schedules
// @Accept       json
// @Produce      json
// @Param        id path int true "Schedule ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  response.Response{data=models.SchedulePresence}
// @Failure      404  {object}  response.Response
// @Router       /schedules/{id} [put]
// @Security     BearerAuth
func (c *ScheduleController) UpdateSchedule() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	var updates map[string]interface{}
	if err := c.Context.ShouldBindJSON(&updates); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	schedule, err := c.scheduleService().UpdateSchedule(uint(id), updates)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, schedule)
}

// DeleteSchedule deletes a schedule entry
// @Summary      Delete Schedule
// @Tags         Schedules
// @Produce      json
// @Param        id path int true "Schedule ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schedules/{id} [delete]
// @Security     BearerAuth
func (c *ScheduleController) DeleteSchedule() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	if err := c.scheduleService().DeleteSchedule(uint(id)); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, nil)
}
