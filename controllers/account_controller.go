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

// AccountController handles account management requests
type AccountController struct {
	BaseControllerImpl
}

// SetActiveRequest toggles the activation flag of an account
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// HandleAccountFunc returns a gin handler dispatching account methods
func HandleAccountFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &AccountController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getAccounts":
			controller.GetAccounts()
		case "getAccount":
			controller.GetAccount()
		case "approve":
			controller.Approve()
		case "setActive":
			controller.SetActive()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetAccounts lists accounts with pagination
// @Summary      Get Account List
// @Tags         Accounts
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Success      200  {object}  response.Response
// @Router       /accounts [get]
// @Security     BearerAuth
func (c *AccountController) GetAccounts() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	accounts, total, err := authService.GetAccounts(page, pageSize)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"accounts":   accounts,
	})
}

// GetAccount fetches one account
// @Summary      Get Account By ID
// @Tags         Accounts
// @Produce      json
// @Param        id path int true "Account ID"
// @Success      200  {object}  response.Response{data=models.Account}
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id} [get]
// @Security     BearerAuth
func (c *AccountController) GetAccount() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	account, err := authService.GetAccountByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, account)
}

// Approve approves a pending sos account
// @Summary      Approve Account
// @Description  Approve a pending sos account; approval also activates the account
// @Tags         Accounts
// @Produce      json
// @Param        id path int true "Account ID"
// @Success      200  {object}  response.Response{data=models.Account}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /accounts/{id}/approve [post]
// @Security     BearerAuth
func (c *AccountController) Approve() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	adminID := CurrentUserID(c.Context)
	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	account, err := authService.Approve(adminID, uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, account)
}

// SetActive toggles the activation flag of an account
// @Summary      Activate or Deactivate Account
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        id path int true "Account ID"
// @Param        request body SetActiveRequest true "Activation flag"
// @Success      200  {object}  response.Response{data=models.Account}
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id}/active [put]
// @Security     BearerAuth
func (c *AccountController) SetActive() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	var req SetActiveRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	account, err := authService.SetActive(uint(id), *req.Active)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, account)
}
