package routes

import (
	"staffing_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing            = "/ping"
	PathServiceOrders   = "/service-orders"
	PathExtensions      = "/extensions"
	PathSubstitutions   = "/substitutions"
	PathServiceRequests = "/service-requests"
	PathServiceOffers   = "/service-offers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addServiceOrderRoutes(rg *gin.RouterGroup, orders *handlers.ServiceOrderHandler, extensions *handlers.ExtensionHandler, substitutions *handlers.SubstitutionHandler) {
	so := rg.Group(PathServiceOrders)
	{
		so.POST("", orders.Create)
		so.GET("", orders.List)
		so.GET("/export", orders.Export)
		so.GET("/:id", orders.GetByID)
		so.POST("/:id/complete", orders.Complete)
		so.POST("/:id/cancel", orders.Cancel)
		so.POST("/:id/suspend", orders.Suspend)
		so.POST("/:id/resume", orders.Resume)

		so.GET("/:id/extensions", orders.ListExtensions)
		so.POST("/:id/extensions", extensions.Create)
		so.GET("/:id/substitutions", orders.ListSubstitutions)
		so.POST("/:id/substitutions", substitutions.Create)
	}

	ext := rg.Group(PathExtensions)
	{
		ext.GET("/:id", extensions.GetByID)
		ext.POST("/:id/approve", extensions.Approve)
		ext.POST("/:id/reject", extensions.Reject)
	}

	sub := rg.Group(PathSubstitutions)
	{
		sub.GET("/:id", substitutions.GetByID)
		sub.POST("/:id/approve", substitutions.Approve)
		sub.POST("/:id/reject", substitutions.Reject)
	}
}

func addServiceRequestRoutes(rg *gin.RouterGroup, requests *handlers.ServiceRequestHandler, offers *handlers.ServiceOfferHandler) {
	sr := rg.Group(PathServiceRequests)
	{
		sr.POST("", requests.Create)
		sr.GET("", requests.List)
		sr.GET("/tasks", requests.ListTasks)
		sr.POST("/tasks/:taskId/complete", requests.CompleteTask)
		sr.GET("/:id", requests.GetByID)
	}

	of := rg.Group(PathServiceOffers)
	{
		of.POST("", offers.Submit)
		of.GET("", offers.List)
		of.GET("/tasks", offers.ListTasks)
		of.POST("/tasks/:taskId/complete", offers.CompleteTask)
		of.GET("/:id", offers.GetByID)
	}
}
