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

// PersonnelController handles internal personnel requests
type PersonnelController struct {
	BaseControllerImpl
}

// HandlePersonnelFunc returns a gin handler dispatching personnel methods
func HandlePersonnelFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &PersonnelController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getPersonnel":
			controller.GetPersonnel()
		case "getPersonnelByID":
			controller.GetPersonnelByID()
		case "createPersonnel":
			controller.CreatePersonnel()
		case "updatePersonnel":
			controller.UpdatePersonnel()
		case "deletePersonnel":
			controller.DeletePersonnel()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *PersonnelController) personnelService() services.InterfacePersonnelService {
	return c.Container.GetService("personnel").(services.InterfacePersonnelService)
}

// GetPersonnel lists personnel with pagination and search
// @Summary      Get Personnel List
// @Tags         Personnel
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        search query string false "Search keyword for name, matricule or department"
// @Success      200  {object}  response.Response
// @Router       /personnel [get]
// @Security     BearerAuth
func (c *PersonnelController) GetPersonnel() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	personnel, total, err := c.personnelService().GetPersonnel(page, pageSize, c.Context.Query("search"))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"personnel":  personnel,
	})
}

// GetPersonnelByID fetches one personnel record
// @Summary      Get Personnel By ID
// @Tags         Personnel
// @Produce      json
// @Param        id path int true "Personnel ID"
// @Success      200  {object}  response.Response{data=models.LeoniPersonnel}
// @Failure      404  {object}  response.Response
// @Router       /personnel/{id} [get]
// @Security     BearerAuth
func (c *PersonnelController) GetPersonnelByID() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	personnel, err := c.personnelService().GetPersonnelByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, personnel)
}

// CreatePersonnel creates a personnel record
// @Summary      Create Personnel
// @Tags         Personnel
// @Accept       json
// @Produce      json
// @Param        request body models.LeoniPersonnel true "Personnel fields"
// @Success      200  {object}  response.Response{data=models.LeoniPersonnel}
// @Failure      400  {object}  response.Response
// @Router       /personnel [post]
// @Security     BearerAuth
func (c *PersonnelController) CreatePersonnel() {
	var personnel models.LeoniPersonnel
	if err := c.Context.ShouldBindJSON(&personnel); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	if err := c.personnelService().CreatePersonnel(&personnel); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, personnel)
}

// UpdatePersonnel updates personnel fields
// @Summary      Update Personnel
// @Tags         Personnel
// @Accept       json
// @Produce      json
// @Param        id path int true "Personnel ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  response.Response{data=models.LeoniPersonnel}
// @Failure      404  {object}  response.Response
// @Router       /personnel/{id} [put]
// @Security     BearerAuth
func (c *PersonnelController) UpdatePersonnel() {
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

	personnel, err := c.personnelService().UpdatePersonnel(uint(id), updates)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, personnel)
}

// DeletePersonnel deletes a personnel record
// @Summary      Delete Personnel
// @Tags         Personnel
// @Produce      json
// @Param        id path int true "Personnel ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /personnel/{id} [delete]
// @Security     BearerAuth
func (c *PersonnelController) DeletePersonnel() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	if err := c.personnelService().DeletePersonnel(uint(id)); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, nil)
}
