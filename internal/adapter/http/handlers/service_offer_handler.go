package handlers

import (
	"net/http"
	"time"

	request "staffing_service/internal/adapter/http/dto/request"
	response "staffing_service/internal/adapter/http/dto/response"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOfferHandler serves offer submission and review. Accepting an
// offer through its review task opens the service order.
type ServiceOfferHandler struct {
	usecase usecase.IServiceOfferUseCase
	now     func() time.Time
}

func NewServiceOfferHandler(uc usecase.IServiceOfferUseCase) *ServiceOfferHandler {
	return &ServiceOfferHandler{usecase: uc, now: time.Now}
}

// @Summary      Submit an offer for a service request
// @Tags         service-offers
// @Accept       json
// @Produce      json
// @Param        payload  body  request.SubmitServiceOfferRequest  true  "Payload"
// @Success      201  {object}  response.SubmittedOfferResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-offers [post]
func (h *ServiceOfferHandler) Submit(c *gin.Context) {
	var payload request.SubmitServiceOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	submitted, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmittedOffer(submitted))
}

// @Summary      Get a service offer
// @Tags         service-offers
// @Produce      json
// @Param        id  path  string  true  "Service offer id"
// @Success      200  {object}  response.ServiceOfferResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-offers/{id} [get]
func (h *ServiceOfferHandler) GetByID(c *gin.Context) {
	offer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOffer(offer))
}

// @Summary      List service offers
// @Tags         service-offers
// @Produce      json
// @Param        service_request_id  query  string  false  "Service request id"
// @Param        status  query  string  false  "Offer status"
// @Success      200  {array}  response.ServiceOfferResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-offers [get]
func (h *ServiceOfferHandler) List(c *gin.Context) {
	var query request.ServiceOfferListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidQuery)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOffers(list))
}

// @Summary      List offer review tasks of a candidate group
// @Tags         service-offers
// @Produce      json
// @Param        group  query  string  true  "Candidate group"
// @Success      200  {array}  response.OfferTaskResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-offers/tasks [get]
func (h *ServiceOfferHandler) ListTasks(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.FromOfferTasks(tasks))
}

// @Summary      Complete an offer review task
// @Tags         service-offers
// @Accept       json
// @Produce      json
// @Param        taskId  path  string  true  "Task id"
// @Param        payload  body  request.TaskDecisionRequest  true  "Payload"
// @Success      200  {object}  response.OfferDecisionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /service-offers/tasks/{taskId}/complete [post]
func (h *ServiceOfferHandler) CompleteTask(c *gin.Context) {
	var payload request.TaskDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	result, err := h.usecase.CompleteTask(c.Request.Context(), c.Param("taskId"), payload.Decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOfferDecision(result, h.now()))
}
