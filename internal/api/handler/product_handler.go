package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medsupply/inventory-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog and stock operations.
type ProductHandler struct {
	products  ports.ProductService
	inventory ports.InventoryService
}

func NewProductHandler(products ports.ProductService, inventory ports.InventoryService) *ProductHandler {
	return &ProductHandler{products: products, inventory: inventory}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (admin only).
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.CreateProduct(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productMessageResponse{
		Message: "product added successfully",
		Product: product,
	})
}

// Update handles PUT /products/:id (admin only). Absent fields keep their
// current values.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), c.Param("id"), toUpdateFields(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "product updated",
		Product: product,
	})
}

// Delete handles DELETE /products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// ReduceStock handles PATCH /products/:id/reduce-stock.
//
// @Summary      Reduce a product's stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Product id"
// @Param        body  body      adjustStockRequest  true  "Quantity to remove"
// @Success      200   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id}/reduce-stock [patch]
func (h *ProductHandler) ReduceStock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.inventory.ReduceStock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "stock reduced successfully",
		Product: product,
	})
}

// IncreaseStock handles PATCH /products/:id/increase-stock.
//
// @Summary      Increase a product's stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Product id"
// @Param        body  body      adjustStockRequest  true  "Quantity to add"
// @Success      200   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id}/increase-stock [patch]
func (h *ProductHandler) IncreaseStock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.inventory.IncreaseStock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "stock increased successfully",
		Product: product,
	})
}
