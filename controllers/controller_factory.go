package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sitegate-http-service/internal/error/code"
	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/services"
	"sitegate-http-service/services/container"
)

// BaseController is the base interface of all controllers
type BaseController interface {
	GetContainer() *container.ServiceContainer
	GetContext() *gin.Context
}

// BaseControllerImpl is the shared controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer implements BaseController
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements BaseController
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory creates controllers bound to a request context
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory creates a new controller factory
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}

// sentinel error to response code mapping
var errorCodeMap = []struct {
	err  error
	code int
}{
	{services.ErrInvalidCredentials, code.ErrPasswordIncorrect},
	{services.ErrPendingApproval, code.ErrAccountPendingApproval},
	{services.ErrDeactivated, code.ErrAccountDeactivated},
	{services.ErrAccountNotFound, code.ErrAccountNotFound},
	{services.ErrAccountExists, code.ErrAccountAlreadyExist},
	{services.ErrNotEligible, code.ErrAccountNotEligible},
	{services.ErrAlreadyApproved, code.ErrAccountAlreadyApproved},
	{services.ErrAlreadyCheckedIn, code.ErrAlreadyCheckedIn},
	{services.ErrNoActiveEntry, code.ErrNoActiveEntry},
	{services.ErrPresenceNotFound, code.ErrPresenceNotFound},
	{services.ErrPersonNotFound, code.ErrPersonNotFound},
	{services.ErrInvalidPersonType, code.ErrInvalidPersonType},
	{services.ErrVehicleNotFound, code.ErrVehicleNotFound},
	{services.ErrVehicleExists, code.ErrVehicleAlreadyExist},
	{services.ErrIncidentNotFound, code.ErrIncidentNotFound},
	{services.ErrInvalidStatus, code.ErrIncidentInvalidStatus},
	{services.ErrInvalidTransition, code.ErrIncidentInvalidTransition},
}

// RespondError maps a service error onto the unified response envelope.
// Known sentinels map to their own codes; other typed errors map by
// kind; anything else is a database/unknown failure.
func RespondError(ctx *gin.Context, err error) {
	for _, m := range errorCodeMap {
		if errors.Is(err, m.err) {
			response.Fail(ctx, m.code, nil)
			return
		}
	}

	switch services.KindOf(err) {
	case services.KindValidation:
		response.FailWithMessage(ctx, code.ErrValidation, err.Error(), nil)
	case services.KindConflict:
		response.FailWithMessage(ctx, code.ErrPersonAlreadyExist, err.Error(), nil)
	case services.KindNotFound:
		response.FailWithMessage(ctx, code.ErrRecordNotFound, err.Error(), nil)
	case services.KindAuthz:
		response.FailWithMessage(ctx, code.ErrTokenInvalid, err.Error(), nil)
	default:
		response.Fail(ctx, code.ErrDatabase, nil)
	}
}

// CurrentUserID extracts the authenticated account id set by the auth
// middleware.
func CurrentUserID(ctx *gin.Context) uint {
	v, exists := ctx.Get("userID")
	if !exists {
		return 0
	}
	switch id := v.(type) {
	case float64:
		return uint(id)
	case uint:
		return id
	case int:
		return uint(id)
	}
	return 0
}
