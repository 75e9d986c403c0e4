package routes

import (
	"workshop_flow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs   = "/jobs"
	PathOrders = "/orders"
)

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("/:id", h.GetJob)
		jobs.GET("/:id/transitions", h.JobTransitions)
		jobs.POST("/:id/advance", h.AdvanceJob)
		jobs.POST("/:id/quote", h.ProposeJobQuote)
		jobs.POST("/:id/quote/resolve", h.ResolveJobQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/transitions", h.OrderTransitions)
		orders.POST("/:id/advance", h.AdvanceOrder)
		orders.POST("/:id/quote", h.ProposeOrderQuote)
		orders.POST("/:id/quote/resolve", h.ResolveOrderQuote)
		orders.POST("/:id/dispatch", h.AttachDispatch)
		orders.PATCH("/:id/dispatch", h.AmendDispatch)
	}
}
