package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/models"
	"sitegate-http-service/services"
	"sitegate-http-service/services/container"
)

// JWTController handles authentication requests
type JWTController struct {
	BaseControllerImpl
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@sitegate.local"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Gate Operator"`
	Email    string `json:"email" binding:"required,email" example:"operator@sitegate.local"`
	Password string `json:"password" binding:"required,min=8" example:"changeme123"`
	Role     string `json:"role" binding:"required" example:"sos"`
}

// LoginData is the payload returned on successful login
type LoginData struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// HandleJWTFunc returns a gin handler dispatching auth methods
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &JWTController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// Login handles user login
// @Summary      Account Login
// @Description  Verify credentials and the approval/activation gates, return a JWT session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	account, token, err := authService.Login(req.Email, req.Password)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, LoginData{
		Token:  token,
		UserID: account.ID,
		Email:  account.Email,
		Role:   string(account.Role),
	})
}

// Register handles account registration
// @Summary      Account Registration
// @Description  Create a backend account; sos accounts stay pending until an admin approves them
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration request parameters"
// @Success      200  {object}  response.Response{data=models.Account}
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	account := models.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.AccountRole(req.Role),
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.Register(&account); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, account)
}
