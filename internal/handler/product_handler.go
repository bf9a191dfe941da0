package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/service"
)

// ProductHandler handles product verification, details and registration.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// VerifyRequest carries the scanned barcode.
type VerifyRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

// VerifyResponse reports whether a barcode maps to a registered product.
type VerifyResponse struct {
	Message    string `json:"message"`
	Status     string `json:"status"`
	ProductID  uint   `json:"product_id,omitempty"`
	BusinessID uint   `json:"business_id,omitempty"`
}

// RegisterProductRequest lists a new product under the calling business.
type RegisterProductRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	ProductCode string `json:"product_code" validate:"required"`
}

// RegisterProductResponse acknowledges a product registration.
type RegisterProductResponse struct {
	Message     string `json:"message"`
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
}

// Verify godoc
// @Summary Verify a scanned product barcode
// @Tags products
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Scanned barcode"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} VerifyResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /products/verify [post]
func (h *ProductHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No barcode provided")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No barcode provided")
	}

	product, err := h.productService.Verify(c.Request().Context(), req.Barcode)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, VerifyResponse{
				Message: "Product not found",
				Status:  "unverified",
			})
		}
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Message:    "Product verified",
		Status:     "success",
		ProductID:  product.ID,
		BusinessID: product.BusinessID,
	})
}

// Details godoc
// @Summary Get product details with certifying business and feedback
// @Tags products
// @Produce json
// @Param product_code query string true "Product code"
// @Success 200 {object} service.ProductDetails
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /products/details [get]
func (h *ProductHandler) Details(c echo.Context) error {
	productCode := c.QueryParam("product_code")
	if productCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "No product code provided")
	}

	details, err := h.productService.Details(c.Request().Context(), productCode)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}

// Register godoc
// @Summary Register a new product
// @Tags products
// @Accept json
// @Produce json
// @Param request body RegisterProductRequest true "Product data"
// @Success 201 {object} RegisterProductResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /products/register [post]
func (h *ProductHandler) Register(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req RegisterProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Product name and code are required")
	}

	product, err := h.productService.Register(c.Request().Context(), id.UserID, req.ProductName, req.ProductCode)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterProductResponse{
		Message:     "Product registered successfully",
		ProductName: product.ProductName,
		ProductCode: product.ProductCode,
	})
}
