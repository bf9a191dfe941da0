package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"swachvillage/internal/service"
)

// FeedbackHandler handles consumer feedback endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedbackRequest carries a rating and comment for a product.
type SubmitFeedbackRequest struct {
	ProductCode  string `json:"product_code" validate:"required"`
	FeedbackText string `json:"feedback_text" validate:"required"`
	Rating       int    `json:"rating" validate:"required"`
	Photos       string `json:"photos"`
}

// SubmitFeedbackResponse acknowledges a feedback submission.
type SubmitFeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID uint   `json:"feedback_id"`
}

// ProductFeedbackResponse is a product's feedback thread with aggregates.
type ProductFeedbackResponse struct {
	Feedback      []service.FeedbackView `json:"feedback"`
	AverageRating float64                `json:"average_rating"`
	Count         int                    `json:"count"`
}

// Submit godoc
// @Summary Submit or update feedback on a product
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body SubmitFeedbackRequest true "Feedback data"
// @Success 201 {object} SubmitFeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/submit [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	feedbackID, updated, err := h.feedbackService.Submit(
		c.Request().Context(), id.UserID, req.ProductCode, req.FeedbackText, req.Rating, req.Photos)
	if err != nil {
		return httpError(c, err)
	}

	message := "Feedback submitted successfully"
	if updated {
		message = "Feedback updated successfully"
	}
	return c.JSON(http.StatusCreated, SubmitFeedbackResponse{
		Message:    message,
		FeedbackID: feedbackID,
	})
}

// Upvote godoc
// @Summary Upvote a feedback entry
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/upvote/{id} [post]
func (h *FeedbackHandler) Upvote(c echo.Context) error {
	feedbackID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid feedback id")
	}

	if err := h.feedbackService.Upvote(c.Request().Context(), uint(feedbackID)); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Feedback upvoted successfully"})
}

// GetForProduct godoc
// @Summary List feedback for a product
// @Tags feedback
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} ProductFeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/get/{product_id} [get]
func (h *FeedbackHandler) GetForProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	items, average, count, err := h.feedbackService.ForProduct(c.Request().Context(), uint(productID))
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, ProductFeedbackResponse{
		Feedback:      items,
		AverageRating: average,
		Count:         count,
	})
}
