// Package product - catalog API controller
package product

import (
	"net/http"

	"orderstock/api/response"
	productapp "orderstock/application/product"
	"orderstock/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Product controller
type Controller struct {
	productService *productapp.ApplicationService
}

// NewController Create product controller
func NewController(productService *productapp.ApplicationService) *Controller {
	return &Controller{
		productService: productService,
	}
}

// RegisterRoutes Register product routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	productGroup := router.Group("/products")
	{
		productGroup.POST("", c.CreateProduct)
		productGroup.GET("", c.ListProducts)
		productGroup.GET("/:id", c.GetProduct)
	}
}

// CreateProduct Add a product to the catalog
// POST /api/v1/products
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req productapp.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	product, err := c.productService.CreateProduct(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, product, "product created successfully")
}

// GetProduct Fetch one product
// GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	product, err := c.productService.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, product, "product retrieved successfully")
}

// ListProducts List the whole catalog
// GET /api/v1/products
func (c *Controller) ListProducts(ctx *gin.Context) {
	products, err := c.productService.ListProducts(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, products, "products retrieved successfully")
}
