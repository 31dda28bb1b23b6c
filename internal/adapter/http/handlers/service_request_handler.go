package handlers

import (
	"net/http"
	"strings"

	request "staffing_service/internal/adapter/http/dto/request"
	response "staffing_service/internal/adapter/http/dto/response"
	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler serves request intake and the validation tasks
// driven by the workflow engine.
type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// @Summary      Create a service request and start its validation process
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateServiceRequestRequest  true  "Payload"
// @Success      201  {object}  response.ServiceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-requests [post]
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// @Summary      Get a service request
// @Tags         service-requests
// @Produce      json
// @Param        id  path  string  true  "Service request id"
// @Success      200  {object}  response.ServiceRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-requests/{id} [get]
func (h *ServiceRequestHandler) GetByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// @Summary      List service requests
// @Tags         service-requests
// @Produce      json
// @Param        status  query  string  false  "Request status"
// @Success      200  {array}  response.ServiceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-requests [get]
func (h *ServiceRequestHandler) List(c *gin.Context) {
	status := entities.ServiceRequestStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	list, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(list))
}

// @Summary      List validation tasks of a candidate group
// @Tags         service-requests
// @Produce      json
// @Param        group  query  string  true  "Candidate group"
// @Success      200  {array}  response.RequestTaskResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-requests/tasks [get]
func (h *ServiceRequestHandler) ListTasks(c *gin.Context) {
	var query request.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidQuery)
		return
	}
	tasks, err := h.usecase.ListTasks(c.Request.Context(), query.Group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequestTasks(tasks))
}

// @Summary      Complete a validation task
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        taskId  path  string  true  "Task id"
// @Param        payload  body  request.TaskDecisionRequest  true  "Payload"
// @Success      200  {object}  response.ServiceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-requests/tasks/{taskId}/complete [post]
func (h *ServiceRequestHandler) CompleteTask(c *gin.Context) {
	var payload request.TaskDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	r, err := h.usecase.CompleteTask(c.Request.Context(), c.Param("taskId"), payload.Decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}
