package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

const recentActivityLimit = 5

// DashboardStats is the headline numbers block of the business dashboard.
type DashboardStats struct {
	TotalScans          int64   `json:"total_scans"`
	TotalFeedback       int64   `json:"total_feedback"`
	AverageRating       float64 `json:"average_rating"`
	CertificationStatus string  `json:"certification_status"`
	CleanlinessRating   float64 `json:"cleanliness_rating"`
	BusinessName        string  `json:"business_name"`
}

// DashboardProgress marks which certification sections have usable data.
type DashboardProgress struct {
	BusinessDetails  bool `json:"business_details"`
	OwnerDetails     bool `json:"owner_details"`
	VendorCompliance bool `json:"vendor_compliance"`
	Cleanliness      bool `json:"cleanliness"`
	CrueltyFree      bool `json:"cruelty_free"`
}

// ActivityItem is one entry in the dashboard's recent activity feed, either a
// newly listed product or a received feedback.
type ActivityItem struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	ProductName         string `json:"product_name"`
	CertificationStatus string `json:"certification_status,omitempty"`
	Rating              int    `json:"rating,omitempty"`
	Comment             string `json:"comment,omitempty"`
	ConsumerName        string `json:"consumer_name,omitempty"`
	Timestamp           string `json:"timestamp"`
}

// DashboardData is the full business dashboard payload.
type DashboardData struct {
	Stats                 DashboardStats    `json:"stats"`
	Progress              DashboardProgress `json:"progress"`
	CompletionPercentage  int               `json:"completion_percentage"`
	RecentActivity        []ActivityItem    `json:"recent_activity"`
	CertificationComplete bool              `json:"certification_complete"`
}

// BusinessFeedbackItem is one feedback entry in the business feedback view.
type BusinessFeedbackItem struct {
	ID           uint   `json:"id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ConsumerName string `json:"consumer_name"`
	ProductName  string `json:"product_name"`
	CreatedAt    string `json:"created_at"`
}

// FeedbackSummary aggregates a business's feedback with a star distribution.
type FeedbackSummary struct {
	TotalFeedback      int64            `json:"total_feedback"`
	AverageRating      float64          `json:"average_rating"`
	RatingDistribution map[string]int64 `json:"rating_distribution"`
}

// BusinessInfo is the certification half of the business profile.
type BusinessInfo struct {
	BusinessName        string  `json:"business_name"`
	RegistrationNumber  string  `json:"registration_number"`
	PanCard             string  `json:"pan_card"`
	AadhaarCard         string  `json:"aadhaar_card"`
	GSTNumber           string  `json:"gst_number"`
	OwnerName           string  `json:"owner_name"`
	Citizenship         string  `json:"citizenship"`
	CleanlinessRating   int     `json:"cleanliness_rating"`
	IsVegetarian        bool    `json:"is_vegetarian"`
	IsVegan             bool    `json:"is_vegan"`
	CrueltyFree         bool    `json:"cruelty_free"`
	Sustainability      string  `json:"sustainability"`
	CertificationStatus string  `json:"certification_status"`
	CertificationDate   *string `json:"certification_date"`
}

// BusinessProfile combines account and certification data.
type BusinessProfile struct {
	UserID     uint          `json:"user_id"`
	FullName   string        `json:"full_name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Role       string        `json:"role"`
	JoinedDate string        `json:"joined_date"`
	Business   *BusinessInfo `json:"business"`
}

// DashboardService aggregates certification, product and feedback data for
// the business-facing views.
type DashboardService interface {
	Dashboard(ctx context.Context, businessID uint) (*DashboardData, error)
	Feedback(ctx context.Context, businessID uint) ([]BusinessFeedbackItem, *FeedbackSummary, error)
	Profile(ctx context.Context, businessID uint) (*BusinessProfile, error)
}

type dashboardService struct {
	certRepo         repository.CertificationRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	feedbackRepo     repository.FeedbackRepository
	verificationRepo repository.VerificationRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	certRepo repository.CertificationRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	feedbackRepo repository.FeedbackRepository,
	verificationRepo repository.VerificationRepository,
) DashboardService {
	return &dashboardService{
		certRepo:         certRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		feedbackRepo:     feedbackRepo,
		verificationRepo: verificationRepo,
	}
}

// Dashboard builds the business dashboard. A business with no certification
// record gets a zeroed default payload rather than an error.
func (s *dashboardService) Dashboard(ctx context.Context, businessID uint) (*DashboardData, error) {
	cert, err := s.certRepo.FindByUserID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DashboardData{
				Stats: DashboardStats{
					CertificationStatus: "not_submitted",
					BusinessName:        "Your Business",
				},
				RecentActivity: []ActivityItem{},
			}, nil
		}
		return nil, fmt.Errorf("find certification: %w", err)
	}

	stats, err := s.feedbackRepo.BusinessStats(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("feedback stats: %w", err)
	}

	scans, err := s.verificationRepo.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("count verifications: %w", err)
	}

	progress := DashboardProgress{
		BusinessDetails:  cert.BusinessName != "" && cert.RegistrationNumber != "",
		OwnerDetails:     cert.OwnerName != "" && cert.OwnerMobile != "" && cert.OwnerEmail != "",
		VendorCompliance: cert.VendorCount > 0 || cert.VendorCertification != "",
		Cleanliness:      cert.CleanlinessRating > 0 || cert.SanitationPractices || cert.WasteManagement,
		CrueltyFree:      cert.CrueltyFree,
	}
	completed := 0
	for _, done := range []bool{
		progress.BusinessDetails,
		progress.OwnerDetails,
		progress.VendorCompliance,
		progress.Cleanliness,
		progress.CrueltyFree,
	} {
		if done {
			completed++
		}
	}
	completionPercentage := completed * 100 / 5

	activity, err := s.recentActivity(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Stats: DashboardStats{
			TotalScans:          scans,
			TotalFeedback:       stats.TotalFeedback,
			AverageRating:       round1(stats.AverageRating),
			CertificationStatus: string(fallbackStatus(cert.Status)),
			CleanlinessRating:   float64(cert.CleanlinessRating),
			BusinessName:        fallback(cert.BusinessName, "Your Business"),
		},
		Progress:              progress,
		CompletionPercentage:  completionPercentage,
		RecentActivity:        activity,
		CertificationComplete: cert.Status == model.CertificationStatusApproved,
	}, nil
}

// recentActivity merges the newest products and feedback, newest first.
func (s *dashboardService) recentActivity(ctx context.Context, businessID uint) ([]ActivityItem, error) {
	products, err := s.productRepo.ListRecentByBusiness(ctx, businessID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent products: %w", err)
	}
	feedback, err := s.feedbackRepo.ListByBusiness(ctx, businessID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent feedback: %w", err)
	}

	activity := make([]ActivityItem, 0, len(products)+len(feedback))
	for _, p := range products {
		activity = append(activity, ActivityItem{
			ID:                  strconv.FormatUint(uint64(p.ID), 10),
			Type:                "product",
			ProductName:         p.ProductName,
			CertificationStatus: p.CertificationStatus,
			Timestamp:           p.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, f := range feedback {
		var ts string
		if f.CreatedAt != nil {
			ts = f.CreatedAt.Format(time.RFC3339)
		}
		activity = append(activity, ActivityItem{
			ID:           strconv.FormatUint(uint64(f.FeedbackID), 10),
			Type:         "feedback",
			ProductName:  f.ProductName,
			Rating:       f.Rating,
			Comment:      f.FeedbackText,
			ConsumerName: f.ConsumerName,
			Timestamp:    ts,
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Timestamp > activity[j].Timestamp
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	return activity, nil
}

// Feedback returns all feedback across the business's products plus a
// summary with the star distribution.
func (s *dashboardService) Feedback(ctx context.Context, businessID uint) ([]BusinessFeedbackItem, *FeedbackSummary, error) {
	rows, err := s.feedbackRepo.ListByBusiness(ctx, businessID, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("list feedback: %w", err)
	}

	items := make([]BusinessFeedbackItem, 0, len(rows))
	for _, row := range rows {
		var createdAt string
		if row.CreatedAt != nil {
			createdAt = row.CreatedAt.Format(time.RFC3339)
		}
		items = append(items, BusinessFeedbackItem{
			ID:           row.FeedbackID,
			Rating:       row.Rating,
			Comment:      row.FeedbackText,
			ConsumerName: row.ConsumerName,
			ProductName:  row.ProductName,
			CreatedAt:    createdAt,
		})
	}

	stats, err := s.feedbackRepo.BusinessStats(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("feedback stats: %w", err)
	}

	summary := &FeedbackSummary{
		TotalFeedback: stats.TotalFeedback,
		AverageRating: round1(stats.AverageRating),
		RatingDistribution: map[string]int64{
			"5": stats.FiveStar,
			"4": stats.FourStar,
			"3": stats.ThreeStar,
			"2": stats.TwoStar,
			"1": stats.OneStar,
		},
	}
	return items, summary, nil
}

// Profile joins the account record with its certification record.
func (s *dashboardService) Profile(ctx context.Context, businessID uint) (*BusinessProfile, error) {
	user, err := s.userRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	profile := &BusinessProfile{
		UserID:     user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		JoinedDate: user.CreatedAt.Format(time.RFC3339),
	}

	cert, err := s.certRepo.FindByUserID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, nil
		}
		return nil, fmt.Errorf("find certification: %w", err)
	}

	certDate := cert.CreatedAt.Format(time.RFC3339)
	profile.Business = &BusinessInfo{
		BusinessName:        cert.BusinessName,
		RegistrationNumber:  cert.RegistrationNumber,
		PanCard:             cert.PanCard,
		AadhaarCard:         cert.AadhaarCard,
		GSTNumber:           cert.GSTNumber,
		OwnerName:           cert.OwnerName,
		Citizenship:         cert.Citizenship,
		CleanlinessRating:   cert.CleanlinessRating,
		IsVegetarian:        cert.IsVegetarian,
		IsVegan:             cert.IsVegan,
		CrueltyFree:         cert.CrueltyFree,
		Sustainability:      cert.Sustainability,
		CertificationStatus: string(fallbackStatus(cert.Status)),
		CertificationDate:   &certDate,
	}
	return profile, nil
}

// round1 rounds a rating average to one decimal place.
func round1(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}
