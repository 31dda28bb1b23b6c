package handlers

import (
	"net/http"

	request "staffing_service/internal/adapter/http/dto/request"
	response "staffing_service/internal/adapter/http/dto/response"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExtensionHandler struct {
	usecase usecase.IExtensionUseCase
}

func NewExtensionHandler(uc usecase.IExtensionUseCase) *ExtensionHandler {
	return &ExtensionHandler{usecase: uc}
}

// Create opens an extension on the order named by the :id path parameter.
//
// @Summary      Request an extension
// @Tags         extensions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Param        payload  body  request.CreateExtensionRequest  true  "Payload"
// @Success      201  {object}  response.ExtensionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/extensions [post]
func (h *ExtensionHandler) Create(c *gin.Context) {
	var payload request.CreateExtensionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	ext, err := h.usecase.Create(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromExtension(ext))
}

// @Summary      Get an extension
// @Tags         extensions
// @Produce      json
// @Param        id  path  string  true  "Extension id"
// @Success      200  {object}  response.ExtensionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /extensions/{id} [get]
func (h *ExtensionHandler) GetByID(c *gin.Context) {
	ext, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtension(ext))
}

// @Summary      Approve an extension
// @Tags         extensions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Extension id"
// @Param        payload  body  request.ApprovalRequest  true  "Payload"
// @Success      200  {object}  response.ExtensionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /extensions/{id}/approve [post]
func (h *ExtensionHandler) Approve(c *gin.Context) {
	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	ext, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtension(ext))
}

// @Summary      Reject an extension
// @Tags         extensions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Extension id"
// @Param        payload  body  request.RejectionRequest  true  "Payload"
// @Success      200  {object}  response.ExtensionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /extensions/{id}/reject [post]
func (h *ExtensionHandler) Reject(c *gin.Context) {
	var payload request.RejectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	ext, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Actor(), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtension(ext))
}
