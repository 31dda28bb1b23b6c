package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	request "staffing_service/internal/adapter/http/dto/request"
	response "staffing_service/internal/adapter/http/dto/response"
	"staffing_service/internal/adapter/http/export"
	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler serves orders, their lifecycle actions and the
// history of their extensions and substitutions.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	now     func() time.Time
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, now: time.Now}
}

// @Summary      Create a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateServiceOrderRequest  true  "Payload"
// @Success      201  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order, h.now()))
}

// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order, h.now()))
}

// @Summary      List service orders
// @Tags         service-orders
// @Produce      json
// @Param        status  query  string  false  "Order status"
// @Param        supplier_id  query  string  false  "Supplier id"
// @Param        supplier_name  query  string  false  "Supplier name (contains)"
// @Param        specialist_name  query  string  false  "Current specialist name (contains)"
// @Param        role  query  string  false  "Role (contains)"
// @Param        domain  query  string  false  "Domain (contains)"
// @Param        search  query  string  false  "Search id, title, specialist and supplier"
// @Success      200  {array}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) List(c *gin.Context) {
	orders, ok := h.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders, h.now()))
}

// Export writes the filtered list as an xlsx workbook.
//
// @Summary      Export service orders as xlsx
// @Tags         service-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "Order status"
// @Param        search  query  string  false  "Search id, title, specialist and supplier"
// @Success      200  {file}  file
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-orders/export [get]
func (h *ServiceOrderHandler) Export(c *gin.Context) {
	orders, ok := h.list(c)
	if !ok {
		return
	}
	now := h.now()
	fileName := fmt.Sprintf("service_orders_%s.xlsx", now.Format("20060102_150405"))

	c.Header("Content-Type", export.ContentTypeXLSX)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Status(http.StatusOK)
	if err := export.WriteServiceOrders(c.Writer, response.FromServiceOrders(orders, now)); err != nil {
		_ = c.Error(err)
	}
}

func (h *ServiceOrderHandler) list(c *gin.Context) ([]entities.ServiceOrder, bool) {
	var query request.ServiceOrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidQuery)
		return nil, false
	}
	orders, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return orders, true
}

// @Summary      List extensions of a service order
// @Tags         extensions
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {array}  response.ExtensionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/extensions [get]
func (h *ServiceOrderHandler) ListExtensions(c *gin.Context) {
	list, err := h.usecase.ListExtensions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtensions(list))
}

// @Summary      List substitutions of a service order
// @Tags         substitutions
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {array}  response.SubstitutionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/substitutions [get]
func (h *ServiceOrderHandler) ListSubstitutions(c *gin.Context) {
	list, err := h.usecase.ListSubstitutions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubstitutions(list))
}

// @Summary      Complete an active service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/complete [post]
func (h *ServiceOrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

// @Summary      Cancel a service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/cancel [post]
func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// @Summary      Suspend an active service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/suspend [post]
func (h *ServiceOrderHandler) Suspend(c *gin.Context) {
	h.transition(c, h.usecase.Suspend)
}

// @Summary      Resume a suspended service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/resume [post]
func (h *ServiceOrderHandler) Resume(c *gin.Context) {
	h.transition(c, h.usecase.Resume)
}

func (h *ServiceOrderHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) (entities.ServiceOrder, error)) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order, h.now()))
}
