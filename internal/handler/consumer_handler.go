package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"swachvillage/internal/model"
	"swachvillage/internal/repository"
	"swachvillage/internal/service"
)

// ConsumerHandler handles the consumer-facing profile, history and directory
// endpoints.
type ConsumerHandler struct {
	consumerService service.ConsumerService
	productService  service.ProductService
}

// NewConsumerHandler creates a new consumer handler.
func NewConsumerHandler(consumerService service.ConsumerService, productService service.ProductService) *ConsumerHandler {
	return &ConsumerHandler{
		consumerService: consumerService,
		productService:  productService,
	}
}

// ConsumerProfileResponse wraps the consumer profile.
type ConsumerProfileResponse struct {
	Success bool                     `json:"success"`
	User    *service.ConsumerProfile `json:"user"`
}

// ConsumerFeedbackResponse lists the consumer's submitted feedback.
type ConsumerFeedbackResponse struct {
	Success  bool                             `json:"success"`
	Feedback []repository.ConsumerFeedbackRow `json:"feedback"`
}

// VerifyProductRequest identifies a product by scanned barcode or typed code.
type VerifyProductRequest struct {
	ProductCode string `json:"product_code"`
	Barcode     string `json:"barcode"`
}

// VerifyProductResponse wraps the verified product.
type VerifyProductResponse struct {
	Success bool                     `json:"success"`
	Product *service.VerifiedProduct `json:"product"`
}

// Profile godoc
// @Summary Get the authenticated consumer's profile
// @Tags consumer
// @Produce json
// @Success 200 {object} ConsumerProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /consumer/profile [get]
func (h *ConsumerHandler) Profile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.consumerService.Profile(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, ConsumerProfileResponse{
		Success: true,
		User:    profile,
	})
}

// MyFeedback godoc
// @Summary List the authenticated consumer's feedback
// @Tags consumer
// @Produce json
// @Success 200 {object} ConsumerFeedbackResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /consumer/feedback [get]
func (h *ConsumerHandler) MyFeedback(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	rows, err := h.consumerService.MyFeedback(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}
	if rows == nil {
		rows = []repository.ConsumerFeedbackRow{}
	}

	return c.JSON(http.StatusOK, ConsumerFeedbackResponse{
		Success:  true,
		Feedback: rows,
	})
}

// VerifyProduct godoc
// @Summary Verify a product and record the scan
// @Tags consumer
// @Accept json
// @Produce json
// @Param request body VerifyProductRequest true "Product code or barcode"
// @Success 200 {object} VerifyProductResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /consumer/verify-product [post]
func (h *ConsumerHandler) VerifyProduct(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req VerifyProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Product code or barcode is required")
	}

	code := req.ProductCode
	method := model.VerificationMethodManual
	if req.Barcode != "" {
		code = req.Barcode
		method = model.VerificationMethodBarcode
	}
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product code or barcode is required")
	}

	product, err := h.productService.VerifyAndRecord(c.Request().Context(), id.UserID, code, method)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, VerifyProductResponse{
		Success: true,
		Product: product,
	})
}

// Businesses godoc
// @Summary List certified businesses
// @Tags consumer
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} service.DirectoryPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /consumer/businesses [get]
func (h *ConsumerHandler) Businesses(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	directory, err := h.productService.Directory(c.Request().Context(), page, limit)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, directory)
}
