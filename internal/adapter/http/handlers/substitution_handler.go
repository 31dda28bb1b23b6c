package handlers

import (
	"net/http"

	request "staffing_service/internal/adapter/http/dto/request"
	response "staffing_service/internal/adapter/http/dto/response"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SubstitutionHandler struct {
	usecase usecase.ISubstitutionUseCase
}

func NewSubstitutionHandler(uc usecase.ISubstitutionUseCase) *SubstitutionHandler {
	return &SubstitutionHandler{usecase: uc}
}

// Create opens a substitution on the order named by the :id path parameter.
//
// @Summary      Request a specialist substitution
// @Tags         substitutions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Param        payload  body  request.CreateSubstitutionRequest  true  "Payload"
// @Success      201  {object}  response.SubstitutionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/substitutions [post]
func (h *SubstitutionHandler) Create(c *gin.Context) {
	var payload request.CreateSubstitutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	sub, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSubstitution(sub))
}

// @Summary      Get a substitution
// @Tags         substitutions
// @Produce      json
// @Param        id  path  string  true  "Substitution id"
// @Success      200  {object}  response.SubstitutionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /substitutions/{id} [get]
func (h *SubstitutionHandler) GetByID(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubstitution(sub))
}

// @Summary      Approve a substitution
// @Tags         substitutions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Substitution id"
// @Param        payload  body  request.ApprovalRequest  true  "Payload"
// @Success      200  {object}  response.SubstitutionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /substitutions/{id}/approve [post]
func (h *SubstitutionHandler) Approve(c *gin.Context) {
	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	sub, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubstitution(sub))
}

// @Summary      Reject a substitution
// @Tags         substitutions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Substitution id"
// @Param        payload  body  request.RejectionRequest  true  "Payload"
// @Success      200  {object}  response.SubstitutionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /substitutions/{id}/reject [post]
func (h *SubstitutionHandler) Reject(c *gin.Context) {
	var payload request.RejectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	sub, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Actor(), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubstitution(sub))
}
