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

// PresenceController handles check-in/check-out requests
type PresenceController struct {
	BaseControllerImpl
}

// CheckInRequest represents a check-in request body
type CheckInRequest struct {
	PersonID   uint       `json:"person_id" binding:"required" example:"1"`
	PersonType string     `json:"person_type" binding:"required" example:"worker"`
	VehicleID  *uint      `json:"vehicle_id,omitempty" example:"3"`
	EntryTime  *time.Time `json:"entry_time,omitempty"`
	Notes      string     `json:"notes,omitempty" example:"delivery at dock 2"`
}

// CheckOutRequest represents a check-out request body
type CheckOutRequest struct {
	PersonID   uint       `json:"person_id" binding:"required" example:"1"`
	PersonType string     `json:"person_type" binding:"required" example:"worker"`
	ExitTime   *time.Time `json:"exit_time,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// ManualEntryRequest represents a back-dated closed entry
type ManualEntryRequest struct {
	PersonID   uint      `json:"person_id" binding:"required"`
	PersonType string    `json:"person_type" binding:"required"`
	EntryTime  time.Time `json:"entry_time" binding:"required"`
	ExitTime   time.Time `json:"exit_time" binding:"required"`
	Notes      string    `json:"notes,omitempty"`
}

// HandlePresenceFunc returns a gin handler dispatching presence methods
func HandlePresenceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &PresenceController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "checkIn":
			controller.CheckIn()
		case "checkOut":
			controller.CheckOut()
		case "manualEntry":
			controller.ManualEntry()
		case "getActive":
			controller.GetActive()
		case "query":
			controller.Query()
		case "getEntry":
			controller.GetEntry()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *PresenceController) presenceService() services.InterfacePresenceService {
	return c.Container.GetService("presence").(services.InterfacePresenceService)
}

// CheckIn opens a presence entry for a person
// @Summary      Check In
// @Description  Open a presence entry; optionally link a vehicle and count the supplier monthly visit
// @Tags         Presence
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "Check-in parameters"
// @Success      200  {object}  response.Response{data=services.EnrichedPresenceEntry}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response  "Person already checked in"
// @Router       /presence/check-in [post]
// @Security     BearerAuth
func (c *PresenceController) CheckIn() {
	var req CheckInRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	entry, err := c.presenceService().CheckIn(services.CheckInRequest{
		PersonID:   req.PersonID,
		PersonType: models.PersonType(req.PersonType),
		VehicleID:  req.VehicleID,
		EntryTime:  req.EntryTime,
		Notes:      req.Notes,
		RecordedBy: CurrentUserID(c.Context),
	})
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, entry)
}

// CheckOut closes the open presence entry of a person
// @Summary      Check Out
// @Description  Close the open presence entry, compute the duration and mirror the exit time to the linked vehicle record
// @Tags         Presence
// @Accept       json
// @Produce      json
// @Param        request body CheckOutRequest true "Check-out parameters"
// @Success      200  {object}  response.Response{data=services.EnrichedPresenceEntry}
// @Failure      404  {object}  response.Response  "No open entry"
// @Router       /presence/check-out [post]
// @Security     BearerAuth
func (c *PresenceController) CheckOut() {
	var req CheckOutRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	entry, err := c.presenceService().CheckOut(services.CheckOutRequest{
		PersonID:   req.PersonID,
		PersonType: models.PersonType(req.PersonType),
		ExitTime:   req.ExitTime,
		Notes:      req.Notes,
	})
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, entry)
}

// ManualEntry records a back-dated visit directly in the closed state
// @Summary      Manual Presence Entry
// @Tags         Presence
// @Accept       json
// @Produce      json
// @Param        request body ManualEntryRequest true "Manual entry parameters"
// @Success      200  {object}  response.Response{data=services.EnrichedPresenceEntry}
// @Router       /presence/manual [post]
// @Security     BearerAuth
func (c *PresenceController) ManualEntry() {
	var req ManualEntryRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	entry, err := c.presenceService().CreateClosed(services.ManualEntryRequest{
		PersonID:   req.PersonID,
		PersonType: models.PersonType(req.PersonType),
		EntryTime:  req.EntryTime,
		ExitTime:   req.ExitTime,
		Notes:      req.Notes,
		RecordedBy: CurrentUserID(c.Context),
	})
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, entry)
}

// GetActive lists everyone currently on site
// @Summary      Get Active Presence Entries
// @Tags         Presence
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /presence/active [get]
// @Security     BearerAuth
func (c *PresenceController) GetActive() {
	entries, err := c.presenceService().ListActive()
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"total":   len(entries),
		"entries": entries,
	})
}

// Query filters and pages the presence ledger
// @Summary      Query Presence Entries
// @Description  Filter by person type, status and log date range; free-text search resolves through the owner entities
// @Tags         Presence
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        person_type query string false "worker | supplier | leoni_personnel"
// @Param        status query string false "entry | exit | present"
// @Param        date_from query string false "Log date lower bound (RFC 3339)"
// @Param        date_to query string false "Log date upper bound (RFC 3339)"
// @Param        search query string false "Free-text search on name or identifier"
// @Success      200  {object}  response.Response
// @Router       /presence [get]
// @Security     BearerAuth
func (c *PresenceController) Query() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))

	filter := services.PresenceFilter{
		PageNum:  page,
		PageSize: pageSize,
		Search:   c.Context.Query("search"),
	}

	if pt := c.Context.Query("person_type"); pt != "" {
		personType := models.PersonType(pt)
		filter.PersonType = &personType
	}
	if st := c.Context.Query("status"); st != "" {
		status := models.PresenceStatus(st)
		filter.Status = &status
	}
	if from := c.Context.Query("date_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			response.ParamError(c.Context, "invalid date_from parameter")
			return
		}
		filter.DateFrom = &t
	}
	if to := c.Context.Query("date_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			response.ParamError(c.Context, "invalid date_to parameter")
			return
		}
		filter.DateTo = &t
	}

	entries, total, err := c.presenceService().Query(filter)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), filter.PageNum, filter.PageSize),
		"entries":    entries,
	})
}

// GetEntry fetches one presence entry
// @Summary      Get Presence Entry By ID
// @Tags         Presence
// @Produce      json
// @Param        id path int true "Presence Entry ID"
// @Success      200  {object}  response.Response{data=services.EnrichedPresenceEntry}
// @Failure      404  {object}  response.Response
// @Router       /presence/{id} [get]
// @Security     BearerAuth
func (c *PresenceController) GetEntry() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	entry, err := c.presenceService().GetByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, entry)
}
