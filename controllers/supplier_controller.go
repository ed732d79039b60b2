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

// SupplierController handles supplier requests
type SupplierController struct {
	BaseControllerImpl
}

// HandleSupplierFunc returns a gin handler dispatching supplier methods
func HandleSupplierFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &SupplierController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getSuppliers":
			controller.GetSuppliers()
		case "getSupplier":
			controller.GetSupplier()
		case "createSupplier":
			controller.CreateSupplier()
		case "updateSupplier":
			controller.UpdateSupplier()
		case "deleteSupplier":
			controller.DeleteSupplier()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *SupplierController) supplierService() services.InterfaceSupplierService {
	return c.Container.GetService("supplier").(services.InterfaceSupplierService)
}

// GetSuppliers lists suppliers with pagination and search
// @Summary      Get Supplier List
// @Tags         Suppliers
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        search query string false "Search keyword for company or identifier"
// @Success      200  {object}  response.Response
// @Router       /suppliers [get]
// @Security     BearerAuth
func (c *SupplierController) GetSuppliers() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	suppliers, total, err := c.supplierService().GetSuppliers(page, pageSize, c.Context.Query("search"))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"suppliers":  suppliers,
	})
}

// GetSupplier fetches one supplier
// @Summary      Get Supplier By ID
// @Tags         Suppliers
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Success      200  {object}  response.Response{data=models.Supplier}
// @Failure      404  {object}  response.Response
// @Router       /suppliers/{id} [get]
// @Security     BearerAuth
func (c *SupplierController) GetSupplier() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	supplier, err := c.supplierService().GetSupplierByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, supplier)
}

// CreateSupplier creates a new supplier
// @Summary      Create Supplier
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        request body models.Supplier true "Supplier fields"
// @Success      200  {object}  response.Response{data=models.Supplier}
// @Failure      400  {object}  response.Response
// @Router       /suppliers [post]
// @Security     BearerAuth
func (c *SupplierController) CreateSupplier() {
	var supplier models.Supplier
	if err := c.Context.ShouldBindJSON(&supplier); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	if err := c.supplierService().CreateSupplier(&supplier); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, supplier)
}

// UpdateSupplier updates supplier fields
// @Summary      Update Supplier
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  response.Response{data=models.Supplier}
// @Failure      404  {object}  response.Response
// @Router       /suppliers/{id} [put]
// @Security     BearerAuth
func (c *SupplierController) UpdateSupplier() {
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

	supplier, err := c.supplierService().UpdateSupplier(uint(id), updates)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, supplier)
}

// DeleteSupplier deletes a supplier
// @Summary      Delete Supplier
// @Tags         Suppliers
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /suppliers/{id} [delete]
// @Security     BearerAuth
func (c *SupplierController) DeleteSupplier() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	if err := c.supplierService().DeleteSupplier(uint(id)); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, nil)
}
