package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swachvillage/internal/service"
)

// BusinessHandler handles the business-facing certification and dashboard
// endpoints.
type BusinessHandler struct {
	certService      service.CertificationService
	dashboardService service.DashboardService
}

// NewBusinessHandler creates a new business handler.
func NewBusinessHandler(certService service.CertificationService, dashboardService service.DashboardService) *BusinessHandler {
	return &BusinessHandler{
		certService:      certService,
		dashboardService: dashboardService,
	}
}

// CertificationRequest is one step (or a full submission) of the
// certification form. Step selects which field group is applied.
type CertificationRequest struct {
	Step string `json:"step"`

	BusinessName       string `json:"business_name"`
	RegistrationNumber string `json:"registration_number"`
	PanCard            string `json:"pan_card"`
	AadhaarCard        string `json:"aadhaar_card"`
	GSTNumber          string `json:"gst_number"`

	OwnerName        string `json:"owner_name"`
	Citizenship      string `json:"citizenship"`
	OwnerMobile      string `json:"owner_mobile"`
	OwnerEmail       string `json:"owner_email"`
	PanCardOwner     string `json:"pan_card_owner"`
	AadhaarCardOwner string `json:"aadhaar_card_owner"`

	VendorCount         int    `json:"vendor_count"`
	VendorCertification string `json:"vendor_certification"`

	CleanlinessRating   int    `json:"cleanliness_rating"`
	Photos              string `json:"photos"`
	SanitationPractices bool   `json:"sanitation_practices"`
	WasteManagement     bool   `json:"waste_management"`

	IsVegetarian   bool   `json:"is_vegetarian"`
	IsVegan        bool   `json:"is_vegan"`
	CrueltyFree    bool   `json:"cruelty_free"`
	Sustainability string `json:"sustainability"`
}

// CertificationResponse acknowledges a certification submission.
type CertificationResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// CertificationDetailsResponse wraps the stored certification record.
type CertificationDetailsResponse struct {
	Certification *service.CertificationDetails `json:"certification"`
}

// BusinessFeedbackResponse is the business feedback list plus summary stats.
type BusinessFeedbackResponse struct {
	Feedback []service.BusinessFeedbackItem `json:"feedback"`
	Summary  *service.FeedbackSummary       `json:"summary"`
}

// ProfileResponse wraps the business profile.
type ProfileResponse struct {
	Message string                   `json:"message"`
	Data    *service.BusinessProfile `json:"data"`
}

// SubmitCertification godoc
// @Summary Submit a certification step or full application
// @Tags business
// @Accept json
// @Produce json
// @Param request body CertificationRequest true "Certification data"
// @Success 201 {object} CertificationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /business/certification [post]
func (h *BusinessHandler) SubmitCertification(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req CertificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
	}

	status, err := h.certService.Submit(c.Request().Context(), id.UserID, service.CertificationSubmission{
		Step:                req.Step,
		BusinessName:        req.BusinessName,
		RegistrationNumber:  req.RegistrationNumber,
		PanCard:             req.PanCard,
		AadhaarCard:         req.AadhaarCard,
		GSTNumber:           req.GSTNumber,
		OwnerName:           req.OwnerName,
		Citizenship:         req.Citizenship,
		OwnerMobile:         req.OwnerMobile,
		OwnerEmail:          req.OwnerEmail,
		PanCardOwner:        req.PanCardOwner,
		AadhaarCardOwner:    req.AadhaarCardOwner,
		VendorCount:         req.VendorCount,
		VendorCertification: req.VendorCertification,
		CleanlinessRating:   req.CleanlinessRating,
		Photos:              req.Photos,
		SanitationPractices: req.SanitationPractices,
		WasteManagement:     req.WasteManagement,
		IsVegetarian:        req.IsVegetarian,
		IsVegan:             req.IsVegan,
		CrueltyFree:         req.CrueltyFree,
		Sustainability:      req.Sustainability,
	})
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, CertificationResponse{
		Message: "Business certification submitted successfully",
		Status:  string(status),
	})
}

// GetCertification godoc
// @Summary Get the stored certification record
// @Tags business
// @Produce json
// @Success 200 {object} CertificationDetailsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /business/certification [get]
func (h *BusinessHandler) GetCertification(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	details, err := h.certService.Get(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, CertificationDetailsResponse{Certification: details})
}

// Dashboard godoc
// @Summary Get the business dashboard
// @Tags business
// @Produce json
// @Success 200 {object} service.DashboardData
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /business/dashboard [get]
func (h *BusinessHandler) Dashboard(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	data, err := h.dashboardService.Dashboard(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, data)
}

// Feedback godoc
// @Summary Get all feedback on the business's products
// @Tags business
// @Produce json
// @Success 200 {object} BusinessFeedbackResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /business/feedback [get]
func (h *BusinessHandler) Feedback(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	items, summary, err := h.dashboardService.Feedback(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, BusinessFeedbackResponse{
		Feedback: items,
		Summary:  summary,
	})
}

// Profile godoc
// @Summary Get the business profile
// @Tags business
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /business/profile [get]
func (h *BusinessHandler) Profile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.dashboardService.Profile(c.Request().Context(), id.UserID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}
