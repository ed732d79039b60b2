package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/models"
	"sitegate-http-service/services"
	"sitegate-http-service/services/container"
)

// IncidentController handles incident workflow requests
type IncidentController struct {
	BaseControllerImpl
}

// ReportIncidentRequest represents an incident report body
type ReportIncidentRequest struct {
	Title       string `json:"title" binding:"required" example:"Broken barrier at gate 1"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty" example:"gate 1"`
	Severity    string `json:"severity,omitempty" example:"medium"`
}

// UpdateIncidentStatusRequest represents a status transition request
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// HandleIncidentFunc returns a gin handler dispatching incident methods
func HandleIncidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &IncidentController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "report":
			controller.Report()
		case "getIncidents":
			controller.GetIncidents()
		case "getIncident":
			controller.GetIncident()
		case "updateStatus":
			controller.UpdateStatus()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *IncidentController) incidentService() services.InterfaceIncidentService {
	return c.Container.GetService("incident").(services.InterfaceIncidentService)
}

// Report files a new incident
// @Summary      Report Incident
// @Tags         Incidents
// @Accept       json
// @Produce      json
// @Param        request body ReportIncidentRequest true "Incident fields"
// @Success      200  {object}  response.Response{data=models.Incident}
// @Failure      400  {object}  response.Response
// @Router       /incidents [post]
// @Security     BearerAuth
func (c *IncidentController) Report() {
	var req ReportIncidentRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	incident := models.Incident{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Severity:    req.Severity,
		ReporterID:  CurrentUserID(c.Context),
	}
	if err := c.incidentService().Report(&incident); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, incident)
}

// GetIncidents lists incidents with pagination and status filter
// @Summary      Get Incident List
// @Tags         Incidents
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        status query string false "pending | approved | rejected | resolved"
// @Success      200  {object}  response.Response
// @Router       /incidents [get]
// @Security     BearerAuth
func (c *IncidentController) GetIncidents() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	var status *models.IncidentStatus
	if st := c.Context.Query("status"); st != "" {
		s := models.IncidentStatus(st)
		status = &s
	}

	incidents, total, err := c.incidentService().GetIncidents(page, pageSize, status)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"incidents":  incidents,
	})
}

// GetIncident fetches one incident
// @Summary      Get Incident By ID
// @Tags         Incidents
// @Produce      json
// @Param        id path int true "Incident ID"
// @Success      200  {object}  response.Response{data=models.Incident}
// @Failure      404  {object}  response.Response
// @Router       /incidents/{id} [get]
// @Security     BearerAuth
func (c *IncidentController) GetIncident() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	incident, err := c.incidentService().GetIncidentByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, incident)
}

// UpdateStatus applies one workflow transition
// @Summary      Update Incident Status
// @Description  Transitions are one way: pending to approved, rejected or resolved; approved and rejected can still resolve
// @Tags         Incidents
// @Accept       json
// @Produce      json
// @Param        id path int true "Incident ID"
// @Param        request body UpdateIncidentStatusRequest true "Target status"
// @Success      200  {object}  response.Response{data=models.Incident}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /incidents/{id}/status [put]
// @Security     BearerAuth
func (c *IncidentController) UpdateStatus() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	var req UpdateIncidentStatusRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	adminID := CurrentUserID(c.Context)
	incident, err := c.incidentService().UpdateStatus(adminID, uint(id), models.IncidentStatus(req.Status))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, incident)
}
