/*
Package order - order API controller

Responsibilities:
1. Receive HTTP requests and bind parameters
2. Call the application service
3. Use the response package for unified envelopes and error mapping

Error handling:
1. Binding errors: response.HandleError returns 400 directly
2. Business errors: response.HandleAppError maps the error code to a status
   (e.g. order.ErrOrderNotFound -> ORDER_NOT_FOUND -> 404)
*/
package order

import (
	"net/http"

	"orderstock/api/response"
	orderapp "orderstock/application/order"
	"orderstock/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Order controller
type Controller struct {
	orderService *orderapp.ApplicationService
}

// NewController Create order controller
func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{
		orderService: orderService,
	}
}

// RegisterRoutes Register order routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.CreateOrder)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.GET("/customer/:customerId", c.ListCustomerOrders)
		orderGroup.POST("/:id/confirm", c.ConfirmOrder)
		orderGroup.POST("/:id/cancel", c.CancelOrder)
		orderGroup.POST("/:id/complete", c.CompleteOrder)
	}
}

// CreateOrder Place a new order
// POST /api/v1/orders
func (c *Controller) CreateOrder(ctx *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.CreateOrder(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, order, "order created successfully")
}

// GetOrder Fetch one order
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order retrieved successfully")
}

// ListCustomerOrders List all orders placed by a customer
// GET /api/v1/orders/customer/:customerId
func (c *Controller) ListCustomerOrders(ctx *gin.Context) {
	customerID := ctx.Param("customerId")
	if customerID == "" {
		response.HandleError(ctx, errors.BadRequest("customer ID is required"), "customer ID is required", http.StatusBadRequest)
		return
	}

	orders, err := c.orderService.ListCustomerOrders(ctx.Request.Context(), customerID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "customer orders retrieved successfully")
}

// ConfirmOrder Confirm a pending order
// POST /api/v1/orders/:id/confirm
func (c *Controller) ConfirmOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.ConfirmOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order confirmed successfully")
}

// CancelOrder Cancel an order and release its reserved stock
// POST /api/v1/orders/:id/cancel
func (c *Controller) CancelOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	// The reason body is optional.
	var req orderapp.CancelOrderRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
			return
		}
	}

	order, err := c.orderService.CancelOrder(ctx.Request.Context(), orderID, req.Reason)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order cancelled successfully")
}

// CompleteOrder Complete a confirmed order
// POST /api/v1/orders/:id/complete
func (c *Controller) CompleteOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.CompleteOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order completed successfully")
}
