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

// VehicleController handles vehicle requests
type VehicleController struct {
	BaseControllerImpl
}

// HandleVehicleFunc returns a gin handler dispatching vehicle methods
func HandleVehicleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &VehicleController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getVehicles":
			controller.GetVehicles()
		case "getVehicle":
			controller.GetVehicle()
		case "createVehicle":
			controller.CreateVehicle()
		case "updateVehicle":
			controller.UpdateVehicle()
		case "deleteVehicle":
			controller.DeleteVehicle()
		case "getVehiclePresences":
			controller.GetVehiclePresences()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *VehicleController) vehicleService() services.InterfaceVehicleService {
	return c.Container.GetService("vehicle").(services.InterfaceVehicleService)
}

// GetVehicles lists vehicles with pagination and plate search
// @Summary      Get Vehicle List
// @Tags         Vehicles
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        search query string false "Search keyword for plate or brand"
// @Success      200  {object}  response.Response
// @Router       /vehicles [get]
// @Security     BearerAuth
func (c *VehicleController) GetVehicles() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	vehicles, total, err := c.vehicleService().GetVehicles(page, pageSize, c.Context.Query("search"))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"vehicles":   vehicles,
	})
}

// GetVehicle fetches one vehicle
// @Summary      Get Vehicle By ID
// @Tags         Vehicles
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Success      200  {object}  response.Response{data=models.Vehicle}
// @Failure      404  {object}  response.Response
// @Router       /vehicles/{id} [get]
// @Security     BearerAuth
func (c *VehicleController) GetVehicle() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	vehicle, err := c.vehicleService().GetVehicleByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, vehicle)
}

// CreateVehicle creates a vehicle
// @Summary      Create Vehicle
// @Description  The owner reference is polymorphic over worker, supplier and leoni_personnel
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        request body models.Vehicle true "Vehicle fields"
// @Success      200  {object}  response.Response{data=models.Vehicle}
// @Failure      400  {object}  response.Response
// @Router       /vehicles [post]
// @Security     BearerAuth
func (c *VehicleController) CreateVehicle() {
	var vehicle models.Vehicle
	if err := c.Context.ShouldBindJSON(&vehicle); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	if err := c.vehicleService().CreateVehicle(&vehicle); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, vehicle)
}

// UpdateVehicle updates vehicle fields
// @Summary      Update Vehicle
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  response.Response{data=models.Vehicle}
// @Failure      404  {object}  response.Response
// @Router       /vehicles/{id} [put]
// @Security     BearerAuth
func (c *VehicleController) UpdateVehicle() {
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

	vehicle, err := c.vehicleService().UpdateVehicle(uint(id), updates)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, vehicle)
}

// DeleteVehicle deletes a vehicle
// @Summary      Delete Vehicle
// @Tags         Vehicles
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles/{id} [delete]
// @Security     BearerAuth
func (c *VehicleController) DeleteVehicle() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	if err := c.vehicleService().DeleteVehicle(uint(id)); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, nil)
}

// GetVehiclePresences lists the presence mirror records of a vehicle
// @Summary      Get Vehicle Presence History
// @Tags         Vehicles
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles/{id}/presences [get]
// @Security     BearerAuth
func (c *VehicleController) GetVehiclePresences() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	presences, total, err := c.vehicleService().GetVehiclePresences(uint(id), page, pageSize)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"presences":  presences,
	})
}
