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

// WorkerController handles contractor worker requests
type WorkerController struct {
	BaseControllerImpl
}

// HandleWorkerFunc returns a gin handler dispatching worker methods
func HandleWorkerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &WorkerController{
			BaseControllerImpl: BaseControllerImpl{Container: container, Context: ctx},
		}

		switch method {
		case "getWorkers":
			controller.GetWorkers()
		case "getWorker":
			controller.GetWorker()
		case "createWorker":
			controller.CreateWorker()
		case "updateWorker":
			controller.UpdateWorker()
		case "deleteWorker":
			controller.DeleteWorker()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

func (c *WorkerController) workerService() services.InterfaceWorkerService {
	return c.Container.GetService("worker").(services.InterfaceWorkerService)
}

// GetWorkers lists workers with pagination and search
// @Summary      Get Worker List
// @Tags         Workers
// @Produce      json
// @Param        page query int false "Page number, default is 1"
// @Param        page_size query int false "Items per page, default is 10"
// @Param        search query string false "Search keyword for name, CIN or company"
// @Success      200  {object}  response.Response
// @Router       /workers [get]
// @Security     BearerAuth
func (c *WorkerController) GetWorkers() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	workers, total, err := c.workerService().GetWorkers(page, pageSize, c.Context.Query("search"))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"workers":    workers,
	})
}

// GetWorker fetches one worker
// @Summary      Get Worker By ID
// @Tags         Workers
// @Produce      json
// @Param        id path int true "Worker ID"
// @Success      200  {object}  response.Response{data=models.Worker}
// @Failure      404  {object}  response.Response
// @Router       /workers/{id} [get]
// @Security     BearerAuth
func (c *WorkerController) GetWorker() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	worker, err := c.workerService().GetWorkerByID(uint(id))
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, worker)
}

// CreateWorker creates a new worker
// @Summary      Create Worker
// @Tags         Workers
// @Accept       json
// @Produce      json
// @Param        request body models.Worker true "Worker fields"
// @Success      200  {object}  response.Response{data=models.Worker}
// @Failure      400  {object}  response.Response
// @Router       /workers [post]
// @Security     BearerAuth
func (c *WorkerController) CreateWorker() {
	var worker models.Worker
	if err := c.Context.ShouldBindJSON(&worker); err != nil {
		response.ParamError(c.Context, err.Error())
		return
	}

	if err := c.workerService().CreateWorker(&worker); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, worker)
}

// UpdateWorker updates worker fields
// @Summary      Update Worker
// @Tags         Workers
// @Accept       json
// @Produce      json
// @Param        id path int true "Worker ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  response.Response{data=models.Worker}
// @Failure      404  {object}  response.Response
// @Router       /workers/{id} [put]
// @Security     BearerAuth
func (c *WorkerController) UpdateWorker() {
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

	worker, err := c.workerService().UpdateWorker(uint(id), updates)
	if err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, worker)
}

// DeleteWorker deletes a worker
// @Summary      Delete Worker
// @Tags         Workers
// @Produce      json
// @Param        id path int true "Worker ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /workers/{id} [delete]
// @Security     BearerAuth
func (c *WorkerController) DeleteWorker() {
	id, err := strconv.Atoi(c.Context.Param("id"))
	if err != nil {
		response.ParamError(c.Context, "invalid id parameter")
		return
	}

	if err := c.workerService().DeleteWorker(uint(id)); err != nil {
		RespondError(c.Context, err)
		return
	}

	response.Success(c.Context, nil)
}
